package booking

import "fmt"

// PaxType is the closed passenger type enumeration.
type PaxType int

const (
	PaxTypeAdult PaxType = iota
	PaxTypeChild
)

const (
	CodeAdult = "ADT"
	CodeChild = "CHD"
)

// paxTypeCodes is the bidirectional mapping between enum variants and
// their wire codes. ValidatePaxTypeCodes checks completeness at startup.
var paxTypeCodes = map[PaxType]string{
	PaxTypeAdult: CodeAdult,
	PaxTypeChild: CodeChild,
}

var paxTypeByCode = func() map[string]PaxType {
	m := make(map[string]PaxType, len(paxTypeCodes))
	for t, code := range paxTypeCodes {
		m[code] = t
	}

	return m
}()

// Code returns the wire code of the passenger type.
func (t PaxType) Code() string {
	return paxTypeCodes[t]
}

// PaxTypeFromCode resolves a wire code to its enum variant.
func PaxTypeFromCode(code string) (PaxType, bool) {
	t, ok := paxTypeByCode[code]

	return t, ok
}

// IsValidPaxTypeCode reports whether code names a known passenger type.
func IsValidPaxTypeCode(code string) bool {
	_, ok := paxTypeByCode[code]

	return ok
}

// ValidatePaxTypeCodes verifies that every enum variant has a distinct
// wire code. Called once from main.
func ValidatePaxTypeCodes() error {
	if len(paxTypeCodes) != len(paxTypeByCode) {
		return fmt.Errorf("pax type code table has duplicate codes: %v", paxTypeCodes)
	}

	for t := PaxTypeAdult; t <= PaxTypeChild; t++ {
		if _, ok := paxTypeCodes[t]; !ok {
			return fmt.Errorf("pax type %d has no wire code", t)
		}
	}

	return nil
}
