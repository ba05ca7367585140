package service

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"enquete-portal-backend/internal/database/models"

	"github.com/sirupsen/logrus"
)

// eosColumn is one field of the fixed-width exchange layout. Offsets are in
// characters, not bytes: the files are UTF-8 and names may carry accents.
type eosColumn struct {
	name       string
	start, end int
}

// eosLayout is the 47-column record layout of the EOS FRANCE exchange files.
// A full line is 1854 characters; shorter lines are legal and the missing
// tail reads as empty fields.
var eosLayout = []eosColumn{
	{"numeroDossier", 0, 10},
	{"referenceDossier", 10, 25},
	{"numeroInterlocuteur", 25, 37},
	{"guidInterlocuteur", 37, 73},
	{"typeDemande", 73, 76},
	{"numeroDemande", 76, 87},
	{"numeroDemandeContestee", 87, 98},
	{"numeroDemandeInitiale", 98, 109},
	{"forfaitDemande", 109, 125},
	{"dateRetourEspere", 125, 135},
	{"qualite", 135, 145},
	{"nom", 145, 175},
	{"prenom", 175, 195},
	{"dateNaissance", 195, 205},
	{"lieuNaissance", 205, 255},
	{"codePostalDeNaissance", 255, 265},
	{"paysNaissance", 265, 297},
	{"nomPatronymique", 297, 327},
	{"adresse1", 327, 359},
	{"adresse2", 359, 391},
	{"adresse3", 391, 423},
	{"adresse4", 423, 455},
	{"ville", 455, 487},
	{"codePostal", 487, 497},
	{"paysResidence", 497, 529},
	{"telephonePersonnel", 529, 544},
	{"telephoneEmployeur", 544, 559},
	{"telecopieEmployeur", 559, 574},
	{"nomEmployeur", 574, 606},
	{"banqueDomiciliation", 606, 638},
	{"libelleGuichet", 638, 668},
	{"titulaireCompte", 668, 700},
	{"codeBanque", 700, 705},
	{"codeGuichet", 705, 710},
	{"numeroCompte", 710, 721},
	{"ribCompte", 721, 723},
	{"datedenvoie", 723, 733},
	{"elementDemandes", 733, 743},
	{"elementObligatoires", 743, 753},
	{"elementContestes", 753, 763},
	{"codeMotif", 763, 779},
	{"motifDeContestation", 779, 843},
	{"cumulMontantsPrecedents", 843, 851},
	{"codeSociete", 851, 853},
	{"urgence", 853, 854},
	{"commentaire", 854, 1854},
}

// EOSParser turns fixed-width exchange files into case records
type EOSParser struct {
	logger *logrus.Logger
}

// NewEOSParser creates a new EOS file parser
func NewEOSParser(logger *logrus.Logger) *EOSParser {
	return &EOSParser{logger: logger}
}

// Parse reads a whole exchange file and returns one case per data line.
// Blank lines and lines without a case number are skipped, as are lines
// that fail to parse; a single bad line never aborts the file.
func (p *EOSParser) Parse(r io.Reader) ([]*models.Case, error) {
	var cases []*models.Case

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		c := p.parseLine(line)
		if c == nil {
			p.logger.WithField("line", lineNumber).Warn("Skipping line without case number")
			continue
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cases, nil
}

// parseLine extracts one case from a fixed-width line. Returns nil when the
// line carries no case number.
func (p *EOSParser) parseLine(line string) *models.Case {
	runes := []rune(line)
	fields := make(map[string]string, len(eosLayout))
	for _, col := range eosLayout {
		fields[col.name] = sliceField(runes, col.start, col.end)
	}

	if fields["numeroDossier"] == "" {
		return nil
	}

	return &models.Case{
		CaseNumber:        fields["numeroDossier"],
		ReferenceNumber:   fields["referenceDossier"],
		ContactNumber:     fields["numeroInterlocuteur"],
		ContactGUID:       fields["guidInterlocuteur"],
		RequestType:       models.RequestType(fields["typeDemande"]),
		RequestNumber:     fields["numeroDemande"],
		ContestedRequest:  fields["numeroDemandeContestee"],
		InitialRequest:    fields["numeroDemandeInitiale"],
		RequestPackage:    fields["forfaitDemande"],
		ExpectedReturnAt:  parseEOSDate(fields["dateRetourEspere"]),
		Title:             fields["qualite"],
		LastName:          fields["nom"],
		FirstName:         fields["prenom"],
		BirthDate:         parseEOSDate(fields["dateNaissance"]),
		BirthPlace:        fields["lieuNaissance"],
		BirthPostalCode:   fields["codePostalDeNaissance"],
		BirthCountry:      fields["paysNaissance"],
		PatronymicName:    fields["nomPatronymique"],
		AddressLine1:      fields["adresse1"],
		AddressLine2:      fields["adresse2"],
		AddressLine3:      fields["adresse3"],
		AddressLine4:      fields["adresse4"],
		City:              fields["ville"],
		PostalCode:        fields["codePostal"],
		ResidenceCountry:  fields["paysResidence"],
		PersonalPhone:     fields["telephonePersonnel"],
		EmployerPhone:     fields["telephoneEmployeur"],
		EmployerFax:       fields["telecopieEmployeur"],
		EmployerName:      fields["nomEmployeur"],
		BankName:          fields["banqueDomiciliation"],
		BankBranchLabel:   fields["libelleGuichet"],
		AccountHolder:     fields["titulaireCompte"],
		BankCode:          fields["codeBanque"],
		BranchCode:        fields["codeGuichet"],
		AccountNumber:     fields["numeroCompte"],
		AccountKey:        fields["ribCompte"],
		SentAt:            parseEOSDate(fields["datedenvoie"]),
		RequestedElements: fields["elementDemandes"],
		MandatoryElements: fields["elementObligatoires"],
		ContestedElements: fields["elementContestes"],
		ReasonCode:        fields["codeMotif"],
		ContestationText:  fields["motifDeContestation"],
		PreviousAmounts:   parseEOSFloat(fields["cumulMontantsPrecedents"]),
		CompanyCode:       fields["codeSociete"],
		Urgency:           fields["urgence"],
		Comment:           fields["commentaire"],
	}
}

func sliceField(runes []rune, start, end int) string {
	if start >= len(runes) {
		return ""
	}
	if end > len(runes) {
		end = len(runes)
	}
	return strings.TrimSpace(string(runes[start:end]))
}

// parseEOSDate reads a DD/MM/YYYY field. Empty or malformed dates are nil.
func parseEOSDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return nil
	}
	return &t
}

// parseEOSFloat reads an amount field with a decimal comma. Empty or
// malformed amounts are nil, never zero.
func parseEOSFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &f
}
