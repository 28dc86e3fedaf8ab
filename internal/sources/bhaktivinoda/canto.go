package bhaktivinoda

import (
	"sort"
	"strings"
)

// Canto is one of the nine sections of Śaraṇāgati.
type Canto struct {
	Number int
	NameEN string
	NameUK string
	slugs  []string
}

// cantos are checked in order; the first slug found in the URL wins.
var cantos = []Canto{
	{1, "Dainya", "Смирення", []string{"dainya"}},
	{2, "Ātma Nivedana", "Посвячення себе", []string{"atmanivedana", "atma-nivedana"}},
	{3, "Goptṛtve-Varaṇa", "Вибір Захисника", []string{"goptritve", "varana"}},
	{4, "Avaśya Rakṣibe Kṛṣṇa", "Крішна неодмінно захистить", []string{"avasya", "raksibe", "krsna"}},
	{5, "Bhakti-Pratikūla-Bhāva", "Відкинути несприятливе для бгакті", []string{"bhakti-pratikula", "pratikula"}},
	{6, "Svīkara", "Прийняти сприятливе", []string{"svikara"}},
	{7, "Bhajana Lālasā", "Прагнення до бгаджану", []string{"bhajana", "lalasa"}},
	{8, "Siddhi Lālasā", "Прагнення до досконалості", []string{"siddhi"}},
	{9, "Vijñapti & Śrī Nāma Māhātmya", "Молитва і слава Святого Імені", []string{"vijnaptih", "vijnapti", "nama-mahatmya", "sri-nama"}},
}

// CantoFromURL determines the canto a song page belongs to.
func CantoFromURL(url string) (Canto, bool) {
	lower := strings.ToLower(url)
	for _, c := range cantos {
		for _, slug := range c.slugs {
			if strings.Contains(lower, slug) {
				return c, true
			}
		}
	}
	return Canto{}, false
}

// CantoGroup is a canto with its song URLs in discovery order.
type CantoGroup struct {
	Canto Canto
	URLs  []string
}

// GroupByCanto buckets song URLs by canto, ordered by canto number. URLs
// whose canto cannot be determined are returned separately.
func GroupByCanto(urls []string) (groups []CantoGroup, unknown []string) {
	index := make(map[int]int)
	for _, u := range urls {
		c, ok := CantoFromURL(u)
		if !ok {
			unknown = append(unknown, u)
			continue
		}
		i, seen := index[c.Number]
		if !seen {
			i = len(groups)
			index[c.Number] = i
			groups = append(groups, CantoGroup{Canto: c})
		}
		groups[i].URLs = append(groups[i].URLs, u)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Canto.Number < groups[j].Canto.Number
	})
	return groups, unknown
}
