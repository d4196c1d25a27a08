package bahnar

import "github.com/npillmayer/translit"

// Substitution triggers. Bahnar letters come first, then the Vietnamese
// letters shared with Telex/VNI typing. A letter accepts several triggers:
// doubling the letter, a digit (VNI style), 'w'/'x' (Telex style) or a
// backslash.
var substitutions = []translit.Entry{
	// ŭ
	{"u8", "ŭ"}, {"uu", "ŭ"}, {"u\\", "ŭ"},
	{"U8", "Ŭ"}, {"UU", "Ŭ"}, {"Uu", "Ŭ"}, {"uU", "Ŭ"}, {"U\\", "Ŭ"},
	// ĉ
	{"c6", "ĉ"}, {"cc", "ĉ"}, {"c\\", "ĉ"},
	{"C6", "Ĉ"}, {"CC", "Ĉ"}, {"Cc", "Ĉ"}, {"cC", "Ĉ"}, {"C\\", "Ĉ"},
	// ĕ
	{"e8", "ĕ"}, {"ew", "ĕ"}, {"e\\", "ĕ"},
	{"E8", "Ĕ"}, {"EW", "Ĕ"}, {"Ew", "Ĕ"}, {"eW", "Ĕ"}, {"E\\", "Ĕ"},
	// ĭ
	{"i8", "ĭ"}, {"iw", "ĭ"}, {"i\\", "ĭ"},
	{"I8", "Ĭ"}, {"IW", "Ĭ"}, {"Iw", "Ĭ"}, {"iW", "Ĭ"}, {"I\\", "Ĭ"},
	// ñ
	{"n4", "ñ"}, {"nx", "ñ"}, {"n\\", "ñ"},
	{"N4", "Ñ"}, {"NX", "Ñ"}, {"Nx", "Ñ"}, {"nX", "Ñ"}, {"N\\", "Ñ"},
	// ǒ
	{"o8", "ǒ"}, {"o\\", "ǒ"},
	{"O8", "Ǒ"}, {"O\\", "Ǒ"},

	// ă, â
	{"aw", "ă"}, {"a8", "ă"},
	{"AW", "Ă"}, {"Aw", "Ă"}, {"aW", "Ă"}, {"A8", "Ă"},
	{"aa", "â"}, {"a6", "â"},
	{"AA", "Â"}, {"Aa", "Â"}, {"aA", "Â"}, {"A6", "Â"},
	// đ
	{"dd", "đ"}, {"d9", "đ"},
	{"DD", "Đ"}, {"Dd", "Đ"}, {"dD", "Đ"}, {"D9", "Đ"},
	// ê
	{"ee", "ê"}, {"e6", "ê"},
	{"EE", "Ê"}, {"Ee", "Ê"}, {"eE", "Ê"}, {"E6", "Ê"},
	// ô, ơ
	{"oo", "ô"}, {"o6", "ô"},
	{"OO", "Ô"}, {"Oo", "Ô"}, {"oO", "Ô"}, {"O6", "Ô"},
	{"ow", "ơ"}, {"o7", "ơ"},
	{"OW", "Ơ"}, {"Ow", "Ơ"}, {"oW", "Ơ"}, {"O7", "Ơ"},
	// ư
	{"uw", "ư"}, {"u7", "ư"},
	{"UW", "Ư"}, {"Uw", "Ư"}, {"uW", "Ư"}, {"U7", "Ư"},
}

// Cancellation triggers: a substitution trigger followed by a repetition of
// its last character reverts to the plain trigger.
var cancellations = []translit.Entry{
	{"e66", "e6"}, {"E66", "E6"},
	{"u88", "u8"}, {"U88", "U8"},
	{"c66", "c6"}, {"C66", "C6"},
	{"i88", "i8"}, {"I88", "I8"},
	{"n44", "n4"}, {"N44", "N4"},
	{"o88", "o8"}, {"O88", "O8"},
	{"uuu", "uu"}, {"UUU", "UU"}, {"Uuu", "Uu"},
	{"ccc", "cc"}, {"CCC", "CC"}, {"Ccc", "Cc"},
	{"eww", "ew"}, {"EWW", "EW"}, {"Eww", "Ew"},
	{"iww", "iw"}, {"IWW", "IW"}, {"Iww", "Iw"},
	{"nxx", "nx"}, {"NXX", "NX"}, {"Nxx", "Nx"},
	{"n\\\\", "n\\"}, {"N\\\\", "N\\"},
	{"e\\\\", "e\\"}, {"E\\\\", "E\\"},
	{"u\\\\", "u\\"}, {"U\\\\", "U\\"},
	{"c\\\\", "c\\"}, {"C\\\\", "C\\"},
	{"i\\\\", "i\\"}, {"I\\\\", "I\\"},
	{"o\\\\", "o\\"}, {"O\\\\", "O\\"},

	{"a88", "a8"}, {"A88", "A8"},
	{"a66", "a6"}, {"A66", "A6"},
	{"aww", "aw"}, {"AWW", "AW"}, {"Aww", "Aw"},
	{"aaa", "aa"}, {"AAA", "AA"}, {"Aaa", "Aa"},
	{"d99", "d9"}, {"D99", "D9"},
	{"ddd", "dd"}, {"DDD", "DD"}, {"Ddd", "Dd"},
	{"eee", "ee"}, {"EEE", "EE"}, {"Eee", "Ee"},
	{"ooo", "oo"}, {"OOO", "OO"}, {"Ooo", "Oo"},
	{"o66", "o6"}, {"O66", "O6"},
	{"o77", "o7"}, {"O77", "O7"},
	{"oww", "ow"}, {"OWW", "OW"}, {"Oww", "Ow"},
	{"u77", "u7"}, {"U77", "U7"},
	{"uww", "uw"}, {"UWW", "UW"}, {"Uww", "Uw"},
}
