package content

import (
	"cmp"
	"slices"
)

// top5 is the SEMrush export of every keyword ranking in Google's top five.
var top5 = []Keyword{
	{"consultora m&a", 1},
	{"consultora m&a españa", 1},
	{"boutiques m&a españa", 1},
	{"asesores m&a españa", 1},
	{"consultoria m&a", 1},
	{"consultor m&a", 1},
	{"consultora reestructuracion financiera", 1},
	{"boutiques m&a", 1},
	{"chief executive officer interim manager", 1},
	{"consultora de reestructuraciones operativas", 1},
	{"financial interim management", 1},
	{"gerente temporal", 1},
	{"interim ceo", 1},
	{"interim cfo", 1},
	{"consultores m&a", 1},
	{"interim management san sebastián", 1},
	{"restructuring advisor", 1},
	{"advisory & interim management", 1},
	{"interim finance director", 1},
	{"asesor en m&a sector tecnológico", 1},
	{"ceo interino", 1},
	{"boutiques m&a madrid", 1},
	{"consultora m&a madrid", 1},
	{"consultora m&a pamplona", 1},
	{"consultora m&a san sebastian", 1},
	{"consultores m&a sector it", 1},
	{"m&a it consultant", 1},
	{"it m&a consulting", 1},
	{"consultora m&a barcelona", 1},
	{"m&a madrid", 1},
	{"cfo", 1},
	{"management buy-out (mbo)", 1},
	{"expert m&a it", 1},
	{"asesor de reestructuración financiera", 2},
	{"cro interim manager", 2},
	{"executive interim managers", 2},
	{"interim chief executive officer", 2},
	{"boutiques m&a barcelona", 2},
	{"management buy out", 2},
	{"que es un mbo", 2},
	{"director temporal", 2},
	{"software m&a advisors", 2},
	{"technology m&a advisors barcelona", 2},
	{"technology m&a advisors madrid", 3},
	{"interim cro", 3},
	{"interim coo", 3},
	{"reestructuración financiera empresarial", 3},
	{"consultora fusiones y adquisiciones", 3},
	{"interim management bilbao", 3},
	{"interim management pamplona", 3},
	{"m&a consulting", 3},
	{"m&a consulting firm spain", 3},
	{"corporate finance madrid", 3},
	{"interim cfo services", 4},
	{"firmas de interim management", 4},
	{"consultoria corporate finance", 4},
	{"asesor m&a", 4},
	{"corporate finance españa", 4},
	{"executive interim management", 5},
	{"interim management barcelona", 5},
	{"asesoramiento en m&a", 5},
	{"corporate finance barcelona", 5},
	{"mergers and acquisitions consulting", 5},
	{"c-level interim management", 5},
}

// SortedKeywords returns the top-five keywords ordered by position, then term.
func SortedKeywords() []Keyword {
	out := slices.Clone(top5)
	slices.SortFunc(out, func(a, b Keyword) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return cmp.Compare(a.Term, b.Term)
	})
	return out
}

// CountAtPosition returns how many top-five keywords sit at pos.
func CountAtPosition(pos int) int {
	n := 0
	for _, k := range top5 {
		if k.Position == pos {
			n++
		}
	}
	return n
}

// TechKeywords are the technology-sector terms shown apart on screen.
func TechKeywords() []Keyword {
	return []Keyword{
		{"asesor en m&a sector tecnológico", 1},
		{"consultores m&a sector it", 1},
		{"m&a it consultant", 1},
		{"it m&a consulting", 1},
		{"expert m&a it", 1},
	}
}

func geoKeywords() []GeoGroup {
	return []GeoGroup{
		{City: "Madrid", Keywords: []Keyword{{"consultora m&a madrid", 1}, {"boutiques m&a madrid", 1}, {"m&a madrid", 1}, {"corporate finance madrid", 3}}},
		{City: "Barcelona", Keywords: []Keyword{{"consultora m&a barcelona", 1}, {"boutiques m&a barcelona", 2}, {"interim management barcelona", 5}, {"corporate finance barcelona", 5}}},
		{City: "Bilbao", Keywords: []Keyword{{"consultora m&a bilbao", 1}, {"interim management bilbao", 3}, {"asesores m&a sector tech bilbao", 3}, {"corporate finance bilbao", 6}}},
		{City: "San Sebastián", Keywords: []Keyword{{"consultora m&a san sebastian", 1}, {"m&a san sebastian", 1}, {"interim management san sebastián", 1}}},
		{City: "Pamplona", Keywords: []Keyword{{"consultora m&a pamplona", 1}, {"corporate finance pamplona", 1}, {"interim management pamplona", 3}}},
	}
}

func internationalKeywords() []Keyword {
	return []Keyword{
		{"restructuring advisor", 1},
		{"financial interim management", 1},
		{"interim finance director", 1},
		{"executive interim managers", 2},
		{"software m&a advisors", 2},
		{"m&a consulting firm spain", 3},
	}
}
