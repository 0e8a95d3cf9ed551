package curp

// offensiveWords is the catalog of inconvenient words (Anexo 2 of the
// normative instructions). A code whose first four characters spell one of
// these gets its second character replaced with 'X'.
var offensiveWords = map[string]struct{}{
	"BACA": {}, "BAKA": {}, "BUEI": {}, "BUEY": {}, "CACA": {}, "CACO": {},
	"CAGA": {}, "CAGO": {}, "CAKA": {}, "CAKO": {}, "COGE": {}, "COGI": {},
	"COJA": {}, "COJE": {}, "COJI": {}, "COJO": {}, "COLA": {}, "CULO": {},
	"FALO": {}, "FETO": {}, "GETA": {}, "GUEI": {}, "GUEY": {}, "JETA": {},
	"JOTO": {}, "KACA": {}, "KACO": {}, "KAGA": {}, "KAGO": {}, "KAKA": {},
	"KAKO": {}, "KOGE": {}, "KOGI": {}, "KOJA": {}, "KOJE": {}, "KOJI": {},
	"KOJO": {}, "KOLA": {}, "KULO": {}, "LILO": {}, "LOCA": {}, "LOCO": {},
	"LOKA": {}, "LOKO": {}, "MALA": {}, "MALO": {}, "MAME": {}, "MAMO": {},
	"MEAR": {}, "MEAS": {}, "MEON": {}, "MIAR": {}, "MION": {}, "MOCO": {},
	"MOKO": {}, "MULA": {}, "MULO": {}, "NACA": {}, "NACO": {}, "PEDA": {},
	"PEDO": {}, "PENE": {}, "PIPI": {}, "PITO": {}, "POPO": {}, "PUTA": {},
	"PUTO": {}, "QULO": {}, "RATA": {}, "ROBA": {}, "ROBE": {}, "ROBO": {},
	"RUIN": {}, "SENO": {}, "TETA": {}, "VACA": {}, "VAGA": {}, "VAGO": {},
	"VAKA": {}, "VUEI": {}, "VUEY": {}, "WUEI": {}, "WUEY": {},
}

// IsOffensive reports whether word is in the catalog. Matching is exact;
// callers are expected to pass an uppercase four-letter prefix.
func IsOffensive(word string) bool {
	_, ok := offensiveWords[word]
	return ok
}

// FilterOffensive replaces the second character of code with 'X' when its
// first four characters are in the catalog. Codes shorter than four
// characters are returned unchanged.
func FilterOffensive(code string) string {
	r := []rune(code)
	if len(r) < 4 {
		return code
	}
	if !IsOffensive(string(r[:4])) {
		return code
	}
	r[1] = letterFiller
	return string(r)
}
