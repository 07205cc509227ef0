package content

// Proposal is the "Propuesta" sales proposal.
type Proposal struct {
	Cover      ProposalCover
	Objectives BlockSection
	Actions    Actions
	Roadmap    Roadmap
	Pricing    Pricing
	NextSteps  NextSteps
	Philosophy Philosophy
	Footer     string
}

// ProposalCover is the hero of the proposal.
type ProposalCover struct {
	Badge      string
	TitleLines []string
	Lead       string
}

// BlockSection is a section made of numbered blocks.
type BlockSection struct {
	Section
	Items []Block
}

// Actions lists the tactics plus the closing hypothesis.
type Actions struct {
	BlockSection
	Hypothesis Block
}

// Roadmap spreads the action lines over the year.
type Roadmap struct {
	Section
	Quarters []Quarter
}

// Pricing is the economic proposal.
type Pricing struct {
	Section
	BreakdownHead string
	Services      []Service
	PriceLabel    string
	Price         string
	Disclaimer    string
}

// NextSteps is the activation calendar.
type NextSteps struct {
	Section
	Steps []Step
}

// Philosophy closes the proposal.
type Philosophy struct {
	Section
	Statement string
	Body      string
}

// Propuesta returns the proposal content.
func Propuesta() *Proposal {
	return &Proposal{
		Cover: ProposalCover{
			Badge:      "Propuesta estratégica",
			TitleLines: []string{"Propuesta estratégica:", "consolidación y expansión", "2026"},
			Lead:       "Plan de trabajo para mantener el liderazgo actual y expandir el alcance hacia nuevos mercados, verticales, modelos de inteligencia (GEO) y reputación de marca.",
		},
		Objectives: BlockSection{
			Section: Section{
				ID:    "objetivos",
				Label: "Objetivos",
				Title: "Objetivos estratégicos",
				Lead:  "Cuatro ejes para consolidar el liderazgo y expandir el alcance.",
			},
			Items: []Block{
				{Number: "01", Title: "Defensa del liderazgo", Description: "Sostener la hegemonía actual mediante una micro-gestión de keywords y un refuerzo semántico específico para cada área de práctica, ejecutando un blindaje geográfico en plazas clave."},
				{Number: "02", Title: "Expansión de fronteras", Description: "Escalar la estrategia de verticales sectoriales (validada como activo) y desplegar la internacionalización, aprovechando que la arquitectura web ya está preparada y nuestra capacidad de posicionamiento internacional validada."},
				{Number: "03", Title: "Consolidación del canal social", Description: "Mantener la frecuencia y tipología de contenidos en LinkedIn, profundizando en los insights de los socios como motor de confianza y autoridad de marca."},
				{Number: "04", Title: "Inteligencia de flujo", Description: "Implementar un panel de control ad-hoc para monitorizar no solo tráfico, sino eventos de negocio (copias de teléfono, clics en email) y optimizar la tasa de conversión mediante mejoras narrativas (CRO)."},
			},
		},
		Actions: Actions{
			BlockSection: BlockSection{
				Section: Section{
					ID:    "actuacion",
					Label: "Actuación",
					Title: "Líneas de actuación",
					Lead:  "Seis tácticas complementarias para alcanzar los objetivos.",
				},
				Items: []Block{
					{Number: "01", Title: "Profundización sectorial", Description: "Desarrollo de nuevas verticales especializadas (ej: Energía, Industria, Agrobio, Cine/Audiovisual, etc.) para captar tráfico de nicho cualificado."},
					{Number: "02", Title: "Despliegue geográfico", Description: "Creación de páginas optimizadas para búsquedas locales estratégicas, asegurando la relevancia en las principales plazas de la firma."},
					{Number: "03", Title: "Internacionalización selectiva", Description: "Traducción estratégica de contenidos clave y verticales de sector para capturar tráfico cross-border de alta intención."},
					{Number: "04", Title: "Ampliación semántica (SEO content)", Description: "Profundización semántica en las páginas de servicio actuales y expansión del blog corporativo mediante contenidos SEO basados en clústeres temáticos."},
					{Number: "05", Title: "Analítica de negocio (BI)", Description: "Desarrollo e implementación de un panel de Business Intelligence propio para la analítica digital y seguimiento del funnel de conversión."},
					{Number: "06", Title: "Autoridad de marca y preparación IA", Description: "Estrategia de linkbuilding y PR digital enfocada en conseguir enlaces en medios relevantes."},
				},
			},
			Hypothesis: Block{
				Title:       "Hipótesis estratégica",
				Description: "Anticipamos que la autoridad de dominio en Google, sumada a la presencia en fuentes externas, será el factor determinante para ser citado como referencia por los futuros modelos de IA generativa.",
			},
		},
		Roadmap: Roadmap{
			Section: Section{
				ID:    "roadmap",
				Label: "Hoja de ruta",
				Title: "Roadmap trimestral",
				Lead:  "Distribución de las líneas de actuación a lo largo del ejercicio.",
			},
			Quarters: []Quarter{
				{Label: "Q1", Months: "Marzo — Mayo 2026", Items: []string{"Cronograma anual y auditoría de keywords", "Primeras verticales sectoriales", "Panel de BI: definición de eventos de negocio"}},
				{Label: "Q2", Months: "Junio — Agosto 2026", Items: []string{"Despliegue geográfico en plazas clave", "Ampliación semántica de páginas de servicio", "Revisión cuatrimestral de analítica"}},
				{Label: "Q3", Months: "Septiembre — Noviembre 2026", Items: []string{"Internacionalización selectiva de contenidos", "Campaña de linkbuilding y PR digital", "Optimización de conversión (CRO)"}},
				{Label: "Q4", Months: "Diciembre 2026 — Febrero 2027", Items: []string{"Nuevas verticales según tracción", "Medición de presencia en IA generativa", "Balance anual y plan del siguiente ejercicio"}},
			},
		},
		Pricing: Pricing{
			Section: Section{
				ID:    "inversion",
				Label: "Inversión",
				Title: "Propuesta económica",
			},
			BreakdownHead: "Desglose de servicios recurrentes",
			Services: []Service{
				{Title: "Dirección y acompañamiento", Concept: "Dirección de cuenta y estrategia.", Detail: "Planificación anual, acompañamiento semanal y supervisión mensual de KPIs de negocio."},
				{Title: "Diseño y desarrollo web", Concept: "Desarrollo y gestión en Webflow.", Detail: "Diseño UI/UX de nuevas landing pages, desarrollo evolutivo del site, gestiones del día a día y optimización técnica continua."},
				{Title: "SEO técnico y de contenidos (On-page)", Concept: "Crecimiento orgánico.", Detail: "Optimización semántica continua, enlazado interno y redacción técnica de contenidos para blog y servicios."},
				{Title: "Estrategia LinkedIn y diseño visual", Concept: "Editorial y diseño gráfico.", Detail: "Diseño gráfico de piezas visuales, redacción editorial de posts, gestión integral del calendario y curación de insights de los socios."},
				{Title: "Autoridad y difusión (Off-page)", Concept: "Reputación digital.", Detail: "Estrategia de linkbuilding y búsqueda activa de oportunidades de aparición en medios externos con enlaces hacia nuestra página para reforzar la autoridad."},
				{Title: "Infraestructura tecnológica (IA)", Concept: "Capa de inteligencia.", Detail: "Acceso y computación de modelos de lenguaje de vanguardia para análisis de datos, toma de decisiones, comprensión del contexto, redacción y enfoque de contenidos."},
			},
			PriceLabel: "Inversión mensual",
			Price:      "7.950 €",
			Disclaimer: "Condiciones exclusivas para NORGESTION. Estos términos no constituyen una oferta pública y no deben tomarse como precios de referencia.",
		},
		NextSteps: NextSteps{
			Section: Section{
				ID:    "siguientes-pasos",
				Label: "Siguientes pasos",
				Title: "Calendario de activación",
			},
			Steps: []Step{
				{Period: "Febrero 2026", Title: "Definición del cronograma", Description: "Establecimiento del plan de acción anual detallado y continuidad de las líneas de trabajo actuales."},
				{Period: "Marzo 2026 — Marzo 2027", Title: "Ejecución del plan", Description: "Implementación de la estrategia establecida con revisiones generales de analítica cuatrimestrales."},
			},
		},
		Philosophy: Philosophy{
			Section: Section{
				ID:    "filosofia",
				Label: "Filosofía",
				Title: "Nuestra posición ante la tecnología",
			},
			Statement: "Mantenemos una filosofía cauta de construcción sólida. Rechazamos la automatización masiva de contenidos generados por IA sin supervisión.",
			Body:      "Nuestra estrategia integra los modelos de inteligencia artificial más potentes del mercado con curiosidad técnica, pero siempre bajo una dirección humana experta. Utilizamos la tecnología para potenciar el análisis, la creatividad y las capacidades del equipo, no para sustituirlas.",
		},
		Footer: "NORGESTION © 2026 - Propuesta Estratégica",
	}
}

// Validate reports the first block with an empty title or an oversized
// description.
func (p *Proposal) Validate() error {
	v := &validator{}
	for _, s := range []Section{p.Objectives.Section, p.Actions.Section, p.Roadmap.Section, p.Pricing.Section, p.NextSteps.Section, p.Philosophy.Section} {
		v.section("section", s)
	}
	for _, b := range p.Objectives.Items {
		v.block("objective", b)
	}
	for _, b := range p.Actions.Items {
		v.block("action", b)
	}
	v.block("hypothesis", p.Actions.Hypothesis)
	for _, q := range p.Roadmap.Quarters {
		v.titled("quarter", q.Label, q.Months)
	}
	for _, s := range p.Pricing.Services {
		v.titled("service", s.Title, s.Detail)
	}
	v.titled("price", p.Pricing.PriceLabel, p.Pricing.Disclaimer)
	for _, s := range p.NextSteps.Steps {
		v.titled("step", s.Title, s.Description)
	}
	v.titled("philosophy", p.Philosophy.Title, p.Philosophy.Body)
	return v.err
}
