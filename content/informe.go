package content

import "slices"

// Report is the "Informe" results report.
type Report struct {
	Cover       ReportCover
	Overview    Overview
	Positioning Positioning
	PageRanking RankingSection
	Visibility  RankingSection
	LinkedIn    LinkedIn
	Impact      Impact
	Competitive Competitive
	Footer      string
}

// ReportCover is the hero of the report.
type ReportCover struct {
	Badge      string
	TitleLines []string
	Lead       string
	Summary    []Block
	SummaryTag string
}

// Overview is section 01.
type Overview struct {
	Section
	Stats []Stat
}

// Positioning is section 02.
type Positioning struct {
	Section
	Stats          []Stat
	HighlightsHead string
	Highlights     []Keyword
	AIPresence     Block
	Geo            []GeoGroup
	International  []Keyword
}

// RankingSection is one of the two ranking tables shown on screen.
type RankingSection struct {
	Section
	Rows     []Ranking
	Insights []Block
}

// LinkedIn is section 03.
type LinkedIn struct {
	Section
	KPIs     []KPI
	Insights []Block
}

// Impact is section 04.
type Impact struct {
	Section
	CategoriesHead string
	Categories     []Category
	Insights       []Block
	International  Block
}

// Competitive is section 05.
type Competitive struct {
	Section
	Cases       []Block
	Advantages  []Block
	Traditional Comparison
	FullStack   Comparison
	Conclusion  string
}

// Informe returns the results report content.
func Informe() *Report {
	return &Report{
		Cover: ReportCover{
			Badge:      "Informe de resultados",
			TitleLines: []string{"Análisis de la", "Estrategia Digital", "2025"},
			Lead:       "Evaluación del rendimiento de la estrategia digital y el posicionamiento de NORGESTION en los mercados de Corporate Finance, M&A, Advisory & Interim Management y Asesoramiento Jurídico-Fiscal.",
			SummaryTag: "Resumen ejecutivo",
			Summary: []Block{
				{Number: "01", Title: "Liderazgo digital", Description: "Dominio en búsquedas de alto valor en Google y creciente presencia en resultados de IA generativa."},
				{Number: "02", Title: "Validación de originación", Description: "Aumento sostenido de contactos comerciales orgánicos generados a través del canal digital."},
				{Number: "03", Title: "Proyección internacional", Description: "La web actúa como escaparate para inversores extranjeros interesados en el middle market español."},
			},
		},
		Overview: Overview{
			Section: Section{
				ID:         "analisis",
				Label:      "01 — Vista general de datos",
				Title:      "Análisis del tráfico web",
				Lead:       "Análisis del rendimiento web y los indicadores clave que demuestran la calidad del tráfico y el posicionamiento de NORGESTION.",
				Disclaimer: "Todos los datos han sido obtenidos de Google Analytics y Google Search Console. Representan datos acumulados de los últimos 3 meses.",
			},
			Stats: []Stat{
				{Value: "15.760", Label: "Sesiones", Description: "Visitas registradas en la web durante los últimos 3 meses."},
				{Value: "308.715", Label: "Impresiones en Google", Description: "Número de veces que NORGESTION aparece en resultados de búsqueda."},
				{Value: "2:26", Label: "Tiempo medio de sesión", Description: "Los visitantes dedican tiempo real a explorar el contenido."},
				{Value: "53%", Label: "Ratio de engagement", Description: "Más de la mitad interactúa activamente con el contenido."},
				{Value: "65%", Label: "Descubrimiento sin marca", Description: "De las búsquedas orgánicas, el 65% no incluye 'NORGESTION'. Son potenciales clientes que no conocían la firma."},
			},
		},
		Positioning: Positioning{
			Section: Section{
				ID:         "liderazgo",
				Label:      "02 — Posicionamiento",
				Title:      "Liderazgo en buscadores",
				Lead:       "El 90% de los clics en Google van a los primeros 5 resultados. NORGESTION domina las búsquedas estratégicas del sector.",
				Disclaimer: "Datos absolutos de SEMrush cruzados con posiciones medias oficiales ofrecidas por Google Search Console para garantizar la solidez de los resultados. No obstante, los resultados actuales podrían diferir de los aquí mostrados.",
			},
			Stats: []Stat{
				{Value: "50+", Label: "Keywords en #1"},
				{Value: "130+", Label: "Keywords en Top 5"},
				{Value: "0€", Label: "Inversión en Google Ads"},
			},
			HighlightsHead: "Keywords destacadas donde NORGESTION ocupa posiciones de liderazgo:",
			Highlights: []Keyword{
				{Term: "consultora m&a", Position: 1},
				{Term: "boutiques m&a españa", Position: 1},
				{Term: "asesores m&a españa", Position: 1},
				{Term: "interim cfo", Position: 1},
				{Term: "financial interim management", Position: 1},
				{Term: "management buy out", Position: 2},
				{Term: "executive interim managers", Position: 2},
				{Term: "consultora fusiones y adquisiciones", Position: 3},
				{Term: "reestructuración financiera empresarial", Position: 3},
			},
			AIPresence: Block{
				Title:       "Presencia en IA generativa",
				Description: "NORGESTION aparece de forma destacada en los resultados de inteligencia artificial generativa (ChatGPT, Perplexity, Claude y Gemini), tanto en búsquedas transaccionales como en consultas específicas sobre asesores boutique y especialistas en middle market.",
			},
			Geo:           geoKeywords(),
			International: internationalKeywords(),
		},
		PageRanking: RankingSection{
			Section: Section{
				ID:         "ranking-paginas",
				Label:      "02.1 — Tráfico real",
				Title:      "Ranking por páginas: interés del usuario",
				Lead:       "Las páginas más visitadas dentro de la web de NORGESTION.",
				Disclaimer: "Datos obtenidos de Google Analytics. Representan el volumen de visitas acumulado en los últimos 3 meses.",
			},
			Rows:     pageRankings(),
			Insights: pageRankingInsights(),
		},
		Visibility: RankingSection{
			Section: Section{
				ID:         "ranking-visibilidad",
				Label:      "02.2 — Visibilidad SEO",
				Title:      "Ranking de visibilidad en Google",
				Lead:       "Páginas con mayor volumen de impresiones (visualizaciones) en los resultados de búsqueda de Google.",
				Disclaimer: "Datos obtenidos de Google Search Console. Las impresiones representan el número de veces que la página apareció en resultados de búsqueda en los últimos 3 meses.",
			},
			Rows:     visibilityRankings(),
			Insights: visibilityRankingInsights(),
		},
		LinkedIn: LinkedIn{
			Section: Section{
				ID:         "linkedin",
				Label:      "03 — LinkedIn corporativo",
				Title:      "Escaparate social",
				Lead:       "Rendimiento del canal corporativo y validación de la estrategia de contenidos.",
				Disclaimer: "Datos obtenidos de LinkedIn Analytics. Representan métricas acumuladas del último trimestre.",
			},
			KPIs: []KPI{
				{Title: "Impresiones", Total: 45180, PerPost: 3227, Target: 2233, Achieved: true},
				{Title: "Clics", Total: 3455, PerPost: 247, Target: 285},
				{Title: "Recomendaciones", Total: 475, PerPost: 34, Target: 25.8, Achieved: true},
				{Title: "Veces Compartido", Total: 32, PerPost: 2.29, Target: 3.5},
			},
			Insights: []Block{
				{Title: "Efectividad del aumento de frecuencia", Description: "El incremento en la cadencia de publicación ha resultado en un crecimiento neto del alcance acumulado. Lejos de saturar, la suma de las publicaciones habituales más el nuevo contenido editorial ha mejorado el rendimiento medio por post."},
				{Title: "Dualidad de formatos", Description: "Las publicaciones visuales (Quotes) son clave para maximizar la visibilidad y reacciones de marca (Brand Awareness), mientras que las galerías y artículos técnicos concentran la generación de clics."},
				{Title: "Coherencia omnicanal", Description: "El interés de los usuarios en la web (visitas a perfiles de Socios) se alinea con la estrategia de humanización en LinkedIn (Quotes y entrevistas), reforzando la confianza digital."},
			},
		},
		Impact: Impact{
			Section: Section{
				ID:         "impacto",
				Label:      "04 — Impacto en negocio",
				Title:      "Activación de la originación digital",
				Lead:       "Evolución del canal web: Aumento significativo en la generación activa de contactos comerciales en 2025.",
				Disclaimer: "Datos agregados del formulario de contacto web durante 2025. La categorización se realiza en base al contenido del mensaje recibido. La información se analiza respetando la privacidad de datos y con fines exclusivamente analíticos; ningún dato personal es almacenado por nosotros.",
			},
			CategoriesHead: "Contactos cualificados recibidos en 2025",
			Categories: []Category{
				{Value: 61, Descriptor: "Contactos de Negocio", Subtext: "M&A, Inversores, Consultas Servicios", Highlighted: true},
				{Value: 50, Descriptor: "Captación de Talento", Subtext: "Candidatos de empleo y prácticas"},
				{Value: 18, Descriptor: "Interim Pool", Subtext: "Solicitudes de adhesión al equipo"},
			},
			Insights: []Block{
				{Title: "Cualificación del flujo", Description: "En 2025 se ha aumentado significativamente el volumen de consultas con intención comercial, asemejándose ya al volumen de captación de talento, lo que valida la web como herramienta de soporte a la originación."},
				{Title: "Tracción vertical", Description: "Validación de especialización. La vertical de M&A Software ha generado contactos específicos del sector, demostrando que el contenido de nicho atrae a una contraparte cualificada."},
				{Title: "Alcance cross-border", Description: "Originación Internacional. Se registran entradas de contacto procedentes de mercados exteriores, correlacionando con el aumento de tráfico internacional observado en la analítica web."},
			},
			International: Block{
				Title:       "Alcance internacional",
				Description: "Contactos recibidos desde España, EE.UU., Alemania, Latam y otros mercados. La web actúa como escaparate para inversores extranjeros interesados en el mercado español.",
			},
		},
		Competitive: Competitive{
			Section: Section{
				ID:    "competitivo",
				Label: "05 — Entorno competitivo",
				Title: "Respuesta del mercado",
				Lead:  "Análisis de la reacción de los competidores y evaluación de la ventaja estructural.",
			},
			Cases: []Block{
				{Title: "Estrategia de Verticalización (Caso Baker Tilly)", Description: "Se detecta en competidores como Baker Tilly la creación de ecosistemas web satélites para competir en Tech M&A. Frente a la integración, optan por segregar tráfico, posiblemente por limitaciones de agilidad corporativa. A su vez, se observa un mimetismo en su estrategia de LinkedIn (Quotes), validando nuestra línea editorial."},
				{Title: "Penalización Técnica (Caso Albia)", Description: "Competidores como Albia han desplegado páginas sectoriales con intención SEO. Sin embargo, su pérdida de visibilidad sugiere una penalización por Experiencia de Usuario (Core Web Vitals). La relevancia semántica no sostiene el ranking si la estructura técnica falla."},
				{Title: "Inercia Estructural (Big Four / Banca)", Description: "Actores tradicionales (Big Four) muestran dificultades de adaptación. A pesar de su inmensa autoridad de marca offline y actualizaciones de contenido, su rigidez estructural limita su reacción en los resultados de búsqueda, cediendo terreno en términos transaccionales."},
			},
			Advantages: []Block{
				{Title: "Autoridad de dominio consolidada", Description: "La trayectoria de NORGESTION a lo largo de los años con una presencia digital de marca sistemática y cuidada le otorga una autoridad que se refleja, por ejemplo, en la capacidad de posicionar páginas de tercer nivel (ej: M&A Software) por encima de portales verticales exclusivos de la competencia."},
				{Title: "Agilidad Full Stack", Description: "El control total del ciclo (Estrategia, Diseño, Código, Contenido) por parte del equipo NORGESTION + kingseo elimina la fricción entre proveedores y departamentos, permitiendo una aplicación ágil de la estrategia y adaptación a las necesidades."},
				{Title: "Visión Largoplacista", Description: "Construcción de activos digitales basada en calidad técnica (Compound Effect), premiando la calidad frente a la cantidad y evitando tácticas de Quick-Win que penalizan a largo plazo. La solidez actual es fruto de la acumulación de acciones coherentes."},
			},
			Traditional: Comparison{
				Title: "Modelo tradicional (competencia)",
				Items: []string{
					"Fragmentado: 3-4 proveedores que no se coordinan",
					"Lento: Cualquier cambio requiere semanas",
					"Genérico: Webs plantilla sin personalidad",
					"Vulnerable: Sin capacidad de reacción ante cambios",
				},
			},
			FullStack: Comparison{
				Title: "Modelo NORGESTION",
				Items: []string{
					"Centralizado: Todo el conocimiento en un único equipo",
					"Ágil: Cambios implementados en horas",
					"Premium: Diseño boutique que refleja posicionamiento",
					"Preparado: Anticipación a cambios tecnológicos",
				},
			},
			Conclusion: "Esta ventaja estructural es difícil de replicar. Un competidor necesitaría años de trabajo consistente y una inversión significativa para igualar la posición de NORGESTION.",
		},
		Footer: "NORGESTION © 2025 - Informe de Ecosistema Digital",
	}
}

// Validate reports the first block with an empty title or an oversized
// description.
func (r *Report) Validate() error {
	v := &validator{}
	for _, b := range r.Cover.Summary {
		v.block("cover summary", b)
	}
	for _, s := range []Section{r.Overview.Section, r.Positioning.Section, r.PageRanking.Section, r.Visibility.Section, r.LinkedIn.Section, r.Impact.Section, r.Competitive.Section} {
		v.section("section", s)
	}
	for _, s := range r.Overview.Stats {
		v.titled("overview stat", s.Label, s.Description)
	}
	for _, s := range r.Positioning.Stats {
		v.titled("positioning stat", s.Label, s.Description)
	}
	v.block("ai presence", r.Positioning.AIPresence)
	for _, b := range slices.Concat(r.PageRanking.Insights, r.Visibility.Insights) {
		v.block("ranking insight", b)
	}
	for _, k := range r.LinkedIn.KPIs {
		v.titled("linkedin kpi", k.Title, "")
	}
	for _, b := range r.LinkedIn.Insights {
		v.block("linkedin insight", b)
	}
	for _, c := range r.Impact.Categories {
		v.titled("impact category", c.Descriptor, c.Subtext)
	}
	for _, b := range r.Impact.Insights {
		v.block("impact insight", b)
	}
	v.block("impact international", r.Impact.International)
	for _, b := range r.Competitive.Cases {
		v.block("competitive case", b)
	}
	for _, b := range r.Competitive.Advantages {
		v.block("competitive advantage", b)
	}
	v.titled("traditional model", r.Competitive.Traditional.Title, "")
	v.titled("full-stack model", r.Competitive.FullStack.Title, r.Competitive.Conclusion)
	return v.err
}
