package pua

// glyphs maps the legacy Ukrainian BBT font's single codepoints (U+F020..U+F0FF)
// to Unicode. Entries are the font's character assignment and must not be
// reordered or "corrected".
var glyphs = map[rune]rune{
	0xF020: ' ', 0xF021: '!', 0xF022: '"', 0xF023: '#', 0xF024: '$', 0xF025: '%',
	0xF026: '&', 0xF027: '\'', 0xF028: '(', 0xF029: ')', 0xF02A: '*', 0xF02B: '+',
	0xF02C: ',', 0xF02D: '-', 0xF02E: '.', 0xF02F: '/', 0xF030: '0', 0xF031: '1',
	0xF032: '2', 0xF033: '3', 0xF034: '4', 0xF035: '5', 0xF036: '6', 0xF037: '7',
	0xF038: '8', 0xF039: '9', 0xF03A: ':', 0xF03B: ';', 0xF03C: '<', 0xF03D: '=',
	0xF03E: '>', 0xF03F: '?', 0xF040: '@',

	0xF041: 'А', 0xF042: 'Б', 0xF043: 'Ц', 0xF044: 'Д', 0xF045: 'Е', 0xF046: 'Ф',
	0xF047: 'Ґ', 0xF048: 'Г', 0xF049: 'І', 0xF04A: 'Й', 0xF04B: 'К', 0xF04C: 'Л',
	0xF04D: 'М', 0xF04E: 'Н', 0xF04F: 'О', 0xF050: 'П', 0xF051: 'Я', 0xF052: 'Р',
	0xF053: 'С', 0xF054: 'Т', 0xF055: 'У', 0xF056: 'В', 0xF057: 'Ш', 0xF058: 'Ь',
	0xF059: 'И', 0xF05A: 'З',

	0xF05B: '[', 0xF05C: '\\', 0xF05D: ']', 0xF05E: '^', 0xF05F: '_', 0xF060: '`',

	0xF061: 'а', 0xF062: 'б', 0xF063: 'ц', 0xF064: 'д', 0xF065: 'е', 0xF066: 'ф',
	0xF067: 'ґ', 0xF068: 'г', 0xF069: 'і', 0xF06A: 'й', 0xF06B: 'к', 0xF06C: 'л',
	0xF06D: 'м', 0xF06E: 'н', 0xF06F: 'о', 0xF070: 'п', 0xF071: 'я', 0xF072: 'р',
	0xF073: 'с', 0xF074: 'т', 0xF075: 'у', 0xF076: 'в', 0xF077: 'ш', 0xF078: 'ь',
	0xF079: 'и', 0xF07A: 'з',

	0xF07B: '{', 0xF07C: '|', 0xF07D: '}', 0xF07E: '~',

	0xF080: 'Ж', 0xF081: 'Ї', 0xF082: 'ї', 0xF083: 'Є', 0xF084: 'є', 0xF085: 'Ч',
	0xF086: 'ч', 0xF087: 'Щ', 0xF088: 'щ', 0xF089: 'Х', 0xF08A: 'х', 0xF08B: 'Ю',
	0xF08C: 'ю', 0xF08D: 'ж', 0xF08E: 'Э', 0xF08F: 'э', 0xF090: '№', 0xF091: '«',
	0xF092: '»', 0xF093: '‘', 0xF094: '’', 0xF095: '“', 0xF096: '”',
	0xF097: '–', 0xF098: '—',

	0xF0B0: '°',

	// IAST lowercase
	0xF0E0: 'ā', 0xF0E1: 'ī', 0xF0E2: 'ū', 0xF0E3: 'ṛ', 0xF0E4: 'ṝ', 0xF0E5: 'ḷ',
	0xF0E6: 'ḹ', 0xF0E7: 'ṅ', 0xF0E8: 'ñ', 0xF0E9: 'ṭ', 0xF0EA: 'ḍ', 0xF0EB: 'ṇ',
	0xF0EC: 'ś', 0xF0ED: 'ṣ', 0xF0EE: 'ḥ', 0xF0EF: 'ṁ',

	// IAST uppercase
	0xF0F0: 'Ā', 0xF0F1: 'Ī', 0xF0F2: 'Ū', 0xF0F3: 'Ṛ', 0xF0F4: 'Ṝ', 0xF0F5: 'Ḷ',
	0xF0F6: 'Ḹ', 0xF0F7: 'Ṅ', 0xF0F8: 'Ñ', 0xF0F9: 'Ṭ', 0xF0FA: 'Ḍ', 0xF0FB: 'Ṇ',
	0xF0FC: 'Ś', 0xF0FD: 'Ṣ', 0xF0FE: 'Ḥ', 0xF0FF: 'Ṁ',
}

// sequences maps the diacritic slots above U+F100 to Cyrillic letters with
// combining marks, used for Sanskrit terms inside Ukrainian text.
// Keys are disjoint, so replacement order does not matter.
var sequences = []struct {
	from string
	to   string
}{
	{"\uf100", "\u0410"},             // А
	{"\uf101", "\u0430\u0304"},       // а̄
	{"\uf102", "\u012b"},             // ī
	{"\uf121", "\u012b"},             // ī
	{"\uf123", "\u04ef"},             // ӯ
	{"\uf103", "\u0434\u0323"},       // д̣
	{"\uf105", ""},                   // style marker
	{"\uf109", "\u043c\u0307"},       // м̇
	{"\uf107", "\u043c\u0310"},       // candrabindu variant
	{"\uf10d", "\u043c\u0310"},       // candrabindu
	{"\uf10f", "\u043d\u0307"},       // н̇
	{"\uf111", "\u043d\u0323"},       // н̣
	{"\uf113", "\u043d\u0303"},       // н̃
	{"\uf115", "\u0440\u0323"},       // р̣
	{"\uf117", "\u0440\u0323"},       // р̣, second encoding
	{"\uf119", "\u0442\u0323"},       // т̣
	{"\uf11b", "\u0445\u0323"},       // х̣
	{"\uf11c", "\u0428\u0301"},       // Ш́
	{"\uf11d", "\u0448\u0301"},       // ш́
	{"\uf11f", "\u0448\u0323"},       // ш̣
	{"\uf125", "\u0440\u0323\u0304"}, // р̣̄
	{"\uf127", "\u043b\u0323"},       // л̣
	{"\uf129", "\u043b\u0323\u0304"}, // л̣̄
}
