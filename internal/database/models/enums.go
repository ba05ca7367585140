package models

// RequestType distinguishes the two kinds of cases the EOS files carry.
type RequestType string

const (
	RequestTypeInvestigation RequestType = "ENQ"
	RequestTypeContestation  RequestType = "CON"
)

// IsValid checks if the RequestType is valid
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeInvestigation, RequestTypeContestation:
		return true
	}
	return false
}

// ResultCode is the outcome an investigator reports for a case.
type ResultCode string

const (
	ResultPositive        ResultCode = "P" // subject located
	ResultNegative        ResultCode = "N" // not found / moved with no forwarding address
	ResultConfirmed       ResultCode = "H" // known address and phone confirmed
	ResultAgencyCancelled ResultCode = "Z"
	ResultUntraceable     ResultCode = "I"
	ResultClientCancelled ResultCode = "Y"
)

// IsValid checks if the ResultCode is valid
func (c ResultCode) IsValid() bool {
	switch c {
	case ResultPositive, ResultNegative, ResultConfirmed,
		ResultAgencyCancelled, ResultUntraceable, ResultClientCancelled:
		return true
	}
	return false
}

// ElementCode is one result category requested for a case. Requested and
// mandatory categories are stored as strings of these single characters.
type ElementCode byte

const (
	ElementAddress  ElementCode = 'A'
	ElementPhone    ElementCode = 'T'
	ElementDeath    ElementCode = 'D'
	ElementBank     ElementCode = 'B'
	ElementEmployer ElementCode = 'E'
	ElementIncome   ElementCode = 'R'
)

// IsValid checks if the ElementCode is valid
func (c ElementCode) IsValid() bool {
	switch c {
	case ElementAddress, ElementPhone, ElementDeath, ElementBank, ElementEmployer, ElementIncome:
		return true
	}
	return false
}

// PaymentFrequency encodes how often a reported income is paid.
type PaymentFrequency string

const (
	FrequencyFortnightly PaymentFrequency = "Q"
	FrequencyWeekly      PaymentFrequency = "H"
	FrequencyBimonthly   PaymentFrequency = "BM"
	FrequencyMonthly     PaymentFrequency = "M"
	FrequencyQuarterly   PaymentFrequency = "T"
	FrequencyHalfYearly  PaymentFrequency = "S"
	FrequencyYearly      PaymentFrequency = "A"
)

// IsValid checks if the PaymentFrequency is valid
func (f PaymentFrequency) IsValid() bool {
	switch f {
	case FrequencyFortnightly, FrequencyWeekly, FrequencyBimonthly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyHalfYearly, FrequencyYearly:
		return true
	}
	return false
}
