package content

func pageRankings() []Ranking {
	return []Ranking{
		{"Home", "www.norgestion.com/", 7481},
		{"Corporate Finance", "www.norgestion.com/corporate-finance", 2595},
		{"Nuestra Firma", "www.norgestion.com/nuestra-firma", 2494},
		{"Home (EN)", "www.norgestion.com/en", 1028},
		{"Jurídico Fiscal", "www.norgestion.com/juridico-fiscal", 983},
		{"Contacto", "www.norgestion.com/contacto", 855},
		{"Advisory & Interim Management", "www.norgestion.com/advisory-interim-management", 611},
		{"Noticias y Conocimiento", "www.norgestion.com/noticias-conocimiento", 606},
		{"Home (sin www)", "norgestion.com/", 500},
		{"Corporate Finance (EN)", "www.norgestion.com/en/corporate-finance", 451},
		{"Our Firm (EN)", "www.norgestion.com/en/our-firm", 344},
		{"M&A", "www.norgestion.com/m-a", 299},
		{"Informes", "www.norgestion.com/informes", 272},
		{"Contact (EN)", "www.norgestion.com/en/contact", 165},
		{"Publicaciones Corporate", "www.norgestion.com/publicaciones-corporate", 150},
		{"Home (CA)", "www.norgestion.com/ca", 133},
	}
}

func pageRankingInsights() []Block {
	return []Block{
		{Title: "Tracción internacional", Description: "La versión en inglés (/en) ocupa la 4ª posición global en visitas, superando a la mayoría de páginas de servicios locales. El tráfico multilingüe es un vector de crecimiento."},
		{Title: "Jerarquía de interés", Description: "El área corporativa y Nuestra Firma lideran el interés, seguidos de Jurídico-Fiscal y M&A, reflejando un interés transversal en los diferentes servicios de la firma."},
		{Title: "Marca personal y liderazgo", Description: "Existe una correlación directa entre la jerarquía corporativa y el interés de la audiencia. Los perfiles del Equipo Directivo (Socios y Presidente) acumulan el mayor volumen de tráfico en la sección de equipo, validando la relevancia de la marca personal en la generación de confianza."},
	}
}

func visibilityRankings() []Ranking {
	return []Ranking{
		{Name: "Executive Interim Management", Value: 13975},
		{Name: "Corporate Finance", Value: 12886},
		{Name: "M&A", Value: 12005},
		{Name: "Home", Value: 10852},
		{Name: "Reestructuraciones Financieras", Value: 10431},
		{Name: "Artículo: Qué es un MBO", Value: 9339},
		{Name: "Nuestra Firma", Value: 7144},
		{Name: "Contacto", Value: 6141},
		{Name: "Artículo: Deberes de los Consejeros", Value: 5948},
		{Name: "M&A Software (EN)", Value: 5231},
		{Name: "Corporate Finance (EN)", Value: 5051},
		{Name: "Informes", Value: 4743},
		{Name: "Advisory Interim Management", Value: 4382},
		{Name: "Financial Interim Management (EN)", Value: 3850},
		{Name: "M&A (EN)", Value: 3695},
		{Name: "M&A Software", Value: 3434},
	}
}

func visibilityRankingInsights() []Block {
	return []Block{
		{Title: "Hegemonía en Corporate Finance", Description: "Aunque Interim Management lidera individualmente, las verticales de Corporate Finance y M&A sumadas dominan el volumen total. El mercado identifica claramente a la firma con operaciones corporativas."},
		{Title: "Servicios especializados vs. Home", Description: "Dato crítico: las páginas de servicios técnicos (Reestructuraciones, M&A, Interim) superan en visibilidad orgánica a la propia Home. El usuario llega buscando soluciones específicas antes que la marca genérica."},
		{Title: "El activo estratégico \"Software\"", Description: "La página de sector M&A Software (versión inglés) genera ~5.200 impresiones, casi el 50% del volumen de la Home en español. Sumada a la versión española (~3.400), esta vertical se ha convertido en un activo crítico de entrada para captación internacional y posicionamiento sectorial."},
	}
}
