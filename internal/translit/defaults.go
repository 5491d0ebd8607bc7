package translit

import "github.com/heartmarshall/myburmese-backend/internal/domain"

// Built-in tables, used when no sheet overrides them. Order matters: it is
// the tie-break for patterns of equal length.

var defaultConsonants = []domain.GlyphRule{
	{Pattern: "က", Replacement: "क", Alternate: "ग", Gloss: "k"},
	{Pattern: "ခ", Replacement: "ख", Alternate: "ग", Gloss: "kh"},
	{Pattern: "ဂ", Replacement: "ग", Gloss: "g"},
	{Pattern: "ဃ", Replacement: "घ", Gloss: "gh"},
	{Pattern: "င", Replacement: "ङ", Gloss: "ng"},
	{Pattern: "စ", Replacement: "स", Alternate: "झ", Gloss: "s"},
	{Pattern: "ဆ", Replacement: "स", Alternate: "झ", Gloss: "s"},
	{Pattern: "ဇ", Replacement: "ज", Gloss: "j"},
	{Pattern: "ဈ", Replacement: "झ", Gloss: "jh"},
	{Pattern: "ည", Replacement: "ज्ञ", Gloss: "ñ"},
	{Pattern: "ဉ", Replacement: "ज्ञ", Gloss: "ñ"},
	{Pattern: "ဋ", Replacement: "ट", Gloss: "ṭ"},
	{Pattern: "ဌ", Replacement: "ठ", Gloss: "ṭh"},
	{Pattern: "ဍ", Replacement: "ड", Gloss: "ḍ"},
	{Pattern: "ဎ", Replacement: "ढ", Gloss: "ḍh"},
	{Pattern: "ဏ", Replacement: "न", Gloss: "ṇ"},
	{Pattern: "တ", Replacement: "त", Alternate: "द", Gloss: "t"},
	{Pattern: "ထ", Replacement: "थ", Alternate: "द", Gloss: "th"},
	{Pattern: "ဒ", Replacement: "द", Gloss: "d"},
	{Pattern: "ဓ", Replacement: "ध", Gloss: "dh"},
	{Pattern: "န", Replacement: "न", Gloss: "n"},
	{Pattern: "ပ", Replacement: "प", Alternate: "ब", Gloss: "p"},
	{Pattern: "ဖ", Replacement: "फ", Gloss: "ph"},
	{Pattern: "ဗ", Replacement: "ब", Gloss: "b"},
	{Pattern: "ဘ", Replacement: "ब", Gloss: "bh"},
	{Pattern: "မ", Replacement: "म", Gloss: "m"},
	{Pattern: "ယ", Replacement: "य", Alternate: "र", Gloss: "y"},
	{Pattern: "ရ", Replacement: "य", Alternate: "र", Gloss: "r"},
	{Pattern: "လ", Replacement: "ल", Gloss: "l"},
	{Pattern: "ဝ", Replacement: "व", Gloss: "w"},
	{Pattern: "သ", Replacement: "थ", Alternate: "द", Gloss: "th"},
	{Pattern: "ဟ", Replacement: "ह", Gloss: "h"},
	{Pattern: "ဠ", Replacement: "ल", Gloss: "l"},
	{Pattern: "အ", Replacement: "अ", Gloss: "a"},
	{Pattern: "ဿ", Replacement: "स्स", Gloss: "ss"},
}

var defaultVowels = []domain.GlyphRule{
	{Pattern: "ါ", Replacement: "ा2"},
	{Pattern: "ာ", Replacement: "ा2"},
	{Pattern: "ား", Replacement: "ा3"},
	{Pattern: "ိ", Replacement: "ि1"},
	{Pattern: "ီ", Replacement: "ि2"},
	{Pattern: "ီး", Replacement: "ि3"},
	{Pattern: "ု", Replacement: "ु1"},
	{Pattern: "ူ", Replacement: "ु2"},
	{Pattern: "ူး", Replacement: "ु3"},
	{Pattern: "ေ", Replacement: "े2"},
	{Pattern: "ေး", Replacement: "े3"},
	{Pattern: "ဲ", Replacement: "े³¹13"},
	{Pattern: "ော", Replacement: "ौ3"},
	{Pattern: "ော်", Replacement: "ौ2"},
	{Pattern: "ို", Replacement: "ो2"},
	{Pattern: "ို့", Replacement: "ो1"},
	{Pattern: "ိုး", Replacement: "ोए"},
	{Pattern: "ောင်", Replacement: "ौं2"},
	{Pattern: "ောင်း", Replacement: "ौं3"},
	{Pattern: "ောက်", Replacement: "ौ?1"},
	{Pattern: "ိုင်", Replacement: "ाइन2"},
	{Pattern: "ိုင်း", Replacement: "ाइन3"},
	{Pattern: "ိုက်", Replacement: "ाइ"},
	{Pattern: "င်", Replacement: "िन2"},
	{Pattern: "င်း", Replacement: "िन3"},
	{Pattern: "င့်", Replacement: "िन1"},
	{Pattern: "င်္", Replacement: "िं2"},
	{Pattern: "န်", Replacement: "ं12"},
	{Pattern: "န်း", Replacement: "ं13"},
	{Pattern: "မ်", Replacement: "ं22"},
	{Pattern: "မ်း", Replacement: "ं23"},
	{Pattern: "ံ", Replacement: "ं32"},
	{Pattern: "ံ့", Replacement: "ं31"},
	{Pattern: "က်", Replacement: "ेत"},
	{Pattern: "တ်", Replacement: "त1"},
	{Pattern: "ပ်", Replacement: "त2"},
	{Pattern: "ယ်", Replacement: "े³¹12"},
	{Pattern: "ည်", Replacement: "े³¹22"},
	{Pattern: "ုတ်", Replacement: "ोट"},
	{Pattern: "ုပ်", Replacement: "ोप"},
	{Pattern: "ုန်", Replacement: "ों12"},
	{Pattern: "ုံ", Replacement: "ों22"},
	{Pattern: "။", Replacement: "॥"},
	{Pattern: "၊", Replacement: "।"},
	{Pattern: "ျ", Replacement: "्य"},
	{Pattern: "ြ", Replacement: "्य"},
	{Pattern: "ှ", Replacement: "्ह"},
	{Pattern: "ွ", Replacement: "्व"},
}

var defaultMedials = []domain.GlyphRule{
	{Pattern: "ကျ", Replacement: "च"},
	{Pattern: "ကြ", Replacement: "च"},
	{Pattern: "ကှ", Replacement: "क्ह"},
	{Pattern: "ကွ", Replacement: "क्व"},
	{Pattern: "ကွှ", Replacement: "क्हव"},
	{Pattern: "ချ", Replacement: "छ"},
	{Pattern: "ခြ", Replacement: "छ"},
	{Pattern: "ခှ", Replacement: "ख्ह"},
	{Pattern: "ခွ", Replacement: "ख्व"},
	{Pattern: "ခွှ", Replacement: "ख्हव"},
	{Pattern: "ဂျ", Replacement: "ज"},
	{Pattern: "ဂြ", Replacement: "ज"},
	{Pattern: "ဂှ", Replacement: "ग्ह"},
	{Pattern: "ဂွ", Replacement: "ग्व"},
	{Pattern: "ဂွှ", Replacement: "ग्हव"},
	{Pattern: "ငျ", Replacement: "ङ्य"},
	{Pattern: "ငြ", Replacement: "ज्ञ"},
	{Pattern: "ငှ", Replacement: "ङ्ह"},
	{Pattern: "ငွ", Replacement: "ङ्व"},
	{Pattern: "ငွှ", Replacement: "ङ्हव"},
	{Pattern: "စျ", Replacement: "स्य"},
	{Pattern: "စြ", Replacement: "स्य"},
	{Pattern: "စှ", Replacement: "स्ह"},
	{Pattern: "စွ", Replacement: "स्व"},
	{Pattern: "စွှ", Replacement: "स्हव"},
	{Pattern: "ဆျ", Replacement: "स्य"},
	{Pattern: "ဆြ", Replacement: "स्य"},
	{Pattern: "ဆှ", Replacement: "स्ह"},
	{Pattern: "ဆွ", Replacement: "स्व"},
	{Pattern: "ဆွှ", Replacement: "स्हव"},
	{Pattern: "ဇျ", Replacement: "ज्य"},
	{Pattern: "ဇြ", Replacement: "ज्य"},
	{Pattern: "ဇှ", Replacement: "ज्ह"},
	{Pattern: "ဇွ", Replacement: "ज्व"},
	{Pattern: "ဇွှ", Replacement: "ज्हव"},
	{Pattern: "ညျ", Replacement: "ज्ञ्य"},
	{Pattern: "ညြ", Replacement: "ज्ञ्य"},
	{Pattern: "ညှ", Replacement: "ज्ञ्ह"},
	{Pattern: "ညွ", Replacement: "ज्ञ्व"},
	{Pattern: "ညွှ", Replacement: "ज्ञ्हव"},
	{Pattern: "တျ", Replacement: "त्य"},
	{Pattern: "တြ", Replacement: "त्य"},
	{Pattern: "တှ", Replacement: "त्ह"},
	{Pattern: "တွ", Replacement: "त्व"},
	{Pattern: "တွှ", Replacement: "त्हव"},
	{Pattern: "ထျ", Replacement: "थ्य"},
	{Pattern: "ထြ", Replacement: "थ्य"},
	{Pattern: "ထှ", Replacement: "थ्ह"},
	{Pattern: "ထွ", Replacement: "थ्व"},
	{Pattern: "ထွှ", Replacement: "थ्हव"},
	{Pattern: "ဒျ", Replacement: "द्य"},
	{Pattern: "ဒြ", Replacement: "द्य"},
	{Pattern: "ဒှ", Replacement: "द्ह"},
	{Pattern: "ဒွ", Replacement: "द्व"},
	{Pattern: "ဒွှ", Replacement: "द्हव"},
	{Pattern: "နျ", Replacement: "न्य"},
	{Pattern: "နြ", Replacement: "न्य"},
	{Pattern: "နှ", Replacement: "न्ह"},
	{Pattern: "နွ", Replacement: "न्व"},
	{Pattern: "နွှ", Replacement: "न्हव"},
	{Pattern: "ပျ", Replacement: "प्य"},
	{Pattern: "ပြ", Replacement: "प्य"},
	{Pattern: "ပှ", Replacement: "प्ह"},
	{Pattern: "ပွ", Replacement: "प्व"},
	{Pattern: "ပွှ", Replacement: "प्हव"},
	{Pattern: "ဖျ", Replacement: "फ्य"},
	{Pattern: "ဖြ", Replacement: "फ्य"},
	{Pattern: "ဖှ", Replacement: "फ्ह"},
	{Pattern: "ဖွ", Replacement: "फ्व"},
	{Pattern: "ဖွှ", Replacement: "फ्हव"},
	{Pattern: "ဗျ", Replacement: "ब्य"},
	{Pattern: "ဗြ", Replacement: "ब्य"},
	{Pattern: "ဗှ", Replacement: "ब्ह"},
	{Pattern: "ဗွ", Replacement: "ब्व"},
	{Pattern: "ဗွှ", Replacement: "ब्हव"},
	{Pattern: "ဘျ", Replacement: "ब्य"},
	{Pattern: "ဘြ", Replacement: "ब्य"},
	{Pattern: "ဘှ", Replacement: "ब्ह"},
	{Pattern: "ဘွ", Replacement: "ब्व"},
	{Pattern: "ဘွှ", Replacement: "ब्हव"},
	{Pattern: "မျ", Replacement: "म्य"},
	{Pattern: "မြ", Replacement: "म्य"},
	{Pattern: "မှ", Replacement: "म्ह"},
	{Pattern: "မွ", Replacement: "म्व"},
	{Pattern: "မွှ", Replacement: "म्हव"},
	{Pattern: "ယျ", Replacement: "य्य"},
	{Pattern: "ယြ", Replacement: "य्य"},
	{Pattern: "ယှ", Replacement: "य्ह"},
	{Pattern: "ယွ", Replacement: "य्व"},
	{Pattern: "ယွှ", Replacement: "य्हव"},
	{Pattern: "ရျ", Replacement: "य्य"},
	{Pattern: "ရြ", Replacement: "य्य"},
	{Pattern: "ရှ", Replacement: "श"},
	{Pattern: "ရွ", Replacement: "य्व"},
	{Pattern: "ရွှ", Replacement: "य्हव"},
	{Pattern: "လျ", Replacement: "ल्य"},
	{Pattern: "လြ", Replacement: "ल्य"},
	{Pattern: "လှ", Replacement: "ल्ह"},
	{Pattern: "လွ", Replacement: "ल्व"},
	{Pattern: "လွှ", Replacement: "ल्हव"},
	{Pattern: "သျ", Replacement: "थ्य"},
	{Pattern: "သြ", Replacement: "थ्य"},
	{Pattern: "သှ", Replacement: "थ्ह"},
	{Pattern: "သွ", Replacement: "थ्व"},
	{Pattern: "သွှ", Replacement: "थ्हव"},
	{Pattern: "ဟျ", Replacement: "ह्य"},
	{Pattern: "ဟြ", Replacement: "ह्य"},
	{Pattern: "ဟှ", Replacement: "ह्ह"},
	{Pattern: "ဟွ", Replacement: "ह्व"},
	{Pattern: "ဟွှ", Replacement: "ह्हव"},
}

var defaultSpecialCases = []domain.SpecialCase{
	{Phrase: "မင်္ဂလာပါ", Replacement: "मिं2ग1ला2बा2"},
	{Phrase: "မင်္ဂလာပါ။", Replacement: "मिं2ग1ला2बा2॥"},
}

// DefaultRuleSet returns a fresh copy of the built-in tables.
func DefaultRuleSet() domain.RuleSet {
	return domain.RuleSet{
		Medials:      append([]domain.GlyphRule(nil), defaultMedials...),
		Vowels:       append([]domain.GlyphRule(nil), defaultVowels...),
		Consonants:   append([]domain.GlyphRule(nil), defaultConsonants...),
		SpecialCases: append([]domain.SpecialCase(nil), defaultSpecialCases...),
	}
}
