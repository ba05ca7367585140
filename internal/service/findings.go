package service

import (
	"errors"
	"fmt"
	"time"

	"enquete-portal-backend/internal/database/models"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// FindingsService handles business logic for investigator-reported findings
type FindingsService struct {
	repo     repository.FindingsRepositoryInterface
	caseRepo repository.CaseRepositoryInterface
}

// Ensure FindingsService implements FindingsServiceInterface
var _ FindingsServiceInterface = (*FindingsService)(nil)

// NewFindingsService creates a new findings service
func NewFindingsService(repo repository.FindingsRepositoryInterface, caseRepo repository.CaseRepositoryInterface) *FindingsService {
	return &FindingsService{repo: repo, caseRepo: caseRepo}
}

// UpdateFindingsRequest is a partial update: only the fields present in the
// request are written, everything else keeps its stored value. Pointers
// distinguish "not sent" from "sent empty", which matters for the amount
// fields where zero is a real value.
type UpdateFindingsRequest struct {
	ResultCode         *string `json:"code_resultat"`
	ElementsFound      *string `json:"elements_retrouves"`
	CivilStatusErrFlag *string `json:"flag_etat_civil_errone"`
	ReturnDate         *string `json:"date_retour"`

	AddressLine1     *string `json:"adresse1"`
	AddressLine2     *string `json:"adresse2"`
	AddressLine3     *string `json:"adresse3"`
	AddressLine4     *string `json:"adresse4"`
	PostalCode       *string `json:"code_postal"`
	City             *string `json:"ville"`
	ResidenceCountry *string `json:"pays_residence"`

	PersonalPhone   *string `json:"telephone_personnel"`
	PhoneAtEmployer *string `json:"telephone_chez_employeur"`

	EmployerName         *string `json:"nom_employeur"`
	EmployerPhone        *string `json:"telephone_employeur"`
	EmployerFax          *string `json:"telecopie_employeur"`
	EmployerAddressLine1 *string `json:"adresse1_employeur"`
	EmployerAddressLine2 *string `json:"adresse2_employeur"`
	EmployerAddressLine3 *string `json:"adresse3_employeur"`
	EmployerAddressLine4 *string `json:"adresse4_employeur"`
	EmployerPostalCode   *string `json:"code_postal_employeur"`
	EmployerCity         *string `json:"ville_employeur"`
	EmployerCountry      *string `json:"pays_employeur"`

	BankName        *string `json:"banque_domiciliation"`
	BankBranchLabel *string `json:"libelle_guichet"`
	AccountHolder   *string `json:"titulaire_compte"`
	BankCode        *string `json:"code_banque"`
	BranchCode      *string `json:"code_guichet"`

	DeathDate          *string `json:"date_deces"`
	DeathCertificateNo *string `json:"numero_acte_deces"`
	DeathINSEECode     *string `json:"code_insee_deces"`
	DeathPostalCode    *string `json:"code_postal_deces"`
	DeathLocality      *string `json:"localite_deces"`

	IncomeComments  *string  `json:"commentaires_revenus"`
	SalaryAmount    *float64 `json:"montant_salaire"`
	SalaryPayDay    *int     `json:"periode_versement_salaire"`
	SalaryFrequency *string  `json:"frequence_versement_salaire"`

	Income1Nature    *string  `json:"nature_revenu1"`
	Income1Amount    *float64 `json:"montant_revenu1"`
	Income1PayDay    *int     `json:"periode_versement_revenu1"`
	Income1Frequency *string  `json:"frequence_versement_revenu1"`
	Income2Nature    *string  `json:"nature_revenu2"`
	Income2Amount    *float64 `json:"montant_revenu2"`
	Income2PayDay    *int     `json:"periode_versement_revenu2"`
	Income2Frequency *string  `json:"frequence_versement_revenu2"`
	Income3Nature    *string  `json:"nature_revenu3"`
	Income3Amount    *float64 `json:"montant_revenu3"`
	Income3PayDay    *int     `json:"periode_versement_revenu3"`
	Income3Frequency *string  `json:"frequence_versement_revenu3"`

	InvoiceNumber   *string  `json:"numero_facture"`
	InvoiceDate     *string  `json:"date_facture"`
	InvoiceAmount   *float64 `json:"montant_facture"`
	AppliedRate     *float64 `json:"tarif_applique"`
	PreviousAmounts *float64 `json:"cumul_montants_precedents"`
	BillingResume   *float64 `json:"reprise_facturation"`
	Discount        *float64 `json:"remise_eventuelle"`

	Memo1 *string `json:"memo1"`
	Memo2 *string `json:"memo2"`
	Memo3 *string `json:"memo3"`
	Memo4 *string `json:"memo4"`
	Memo5 *string `json:"memo5"`
}

// GetByCaseID returns the findings of one case
func (s *FindingsService) GetByCaseID(caseID uint) (*models.Findings, error) {
	f, err := s.repo.GetByCaseID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFindingsNotFound
		}
		return nil, fmt.Errorf("failed to get findings: %w", err)
	}
	return f, nil
}

// Update applies a partial findings update for one case. The row is created
// on first write when the import somehow left none behind.
func (s *FindingsService) Update(caseID uint, req *UpdateFindingsRequest) (*models.Findings, error) {
	if req.ResultCode != nil && *req.ResultCode != "" && !models.ResultCode(*req.ResultCode).IsValid() {
		return nil, apperrors.NewValidationError("code_resultat", "unknown result code")
	}
	for _, freq := range []*string{req.SalaryFrequency, req.Income1Frequency, req.Income2Frequency, req.Income3Frequency} {
		if freq != nil && *freq != "" && !models.PaymentFrequency(*freq).IsValid() {
			return nil, apperrors.NewValidationError("frequence_versement", "unknown payment frequency")
		}
	}

	if _, err := s.caseRepo.GetByID(caseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	f, err := s.repo.GetByCaseID(caseID)
	created := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get findings: %w", err)
		}
		f = &models.Findings{CaseID: caseID}
		created = true
	}

	s.apply(f, req)

	if created {
		err = s.repo.Create(f)
	} else {
		err = s.repo.Update(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save findings: %w", err)
	}
	return f, nil
}

func (s *FindingsService) apply(f *models.Findings, req *UpdateFindingsRequest) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setDate := func(dst **time.Time, src *string) {
		if src == nil {
			return
		}
		if *src == "" {
			*dst = nil
			return
		}
		if t, err := time.Parse("2006-01-02", *src); err == nil {
			*dst = &t
		}
	}
	setFloat := func(dst **float64, src *float64) {
		if src != nil {
			*dst = src
		}
	}
	setInt := func(dst **int, src *int) {
		if src != nil {
			*dst = src
		}
	}

	if req.ResultCode != nil {
		f.ResultCode = models.ResultCode(*req.ResultCode)
	}
	setString(&f.ElementsFound, req.ElementsFound)
	setString(&f.CivilStatusErrFlag, req.CivilStatusErrFlag)
	setDate(&f.ReturnedAt, req.ReturnDate)

	setString(&f.AddressLine1, req.AddressLine1)
	setString(&f.AddressLine2, req.AddressLine2)
	setString(&f.AddressLine3, req.AddressLine3)
	setString(&f.AddressLine4, req.AddressLine4)
	setString(&f.PostalCode, req.PostalCode)
	setString(&f.City, req.City)
	setString(&f.ResidenceCountry, req.ResidenceCountry)

	setString(&f.PersonalPhone, req.PersonalPhone)
	setString(&f.PhoneAtEmployer, req.PhoneAtEmployer)

	setString(&f.EmployerName, req.EmployerName)
	setString(&f.EmployerPhone, req.EmployerPhone)
	setString(&f.EmployerFax, req.EmployerFax)
	setString(&f.EmployerAddressLine1, req.EmployerAddressLine1)
	setString(&f.EmployerAddressLine2, req.EmployerAddressLine2)
	setString(&f.EmployerAddressLine3, req.EmployerAddressLine3)
	setString(&f.EmployerAddressLine4, req.EmployerAddressLine4)
	setString(&f.EmployerPostalCode, req.EmployerPostalCode)
	setString(&f.EmployerCity, req.EmployerCity)
	setString(&f.EmployerCountry, req.EmployerCountry)

	setString(&f.BankName, req.BankName)
	setString(&f.BankBranchLabel, req.BankBranchLabel)
	setString(&f.AccountHolder, req.AccountHolder)
	setString(&f.BankCode, req.BankCode)
	setString(&f.BranchCode, req.BranchCode)

	setDate(&f.DeathDate, req.DeathDate)
	setString(&f.DeathCertificateNo, req.DeathCertificateNo)
	setString(&f.DeathINSEECode, req.DeathINSEECode)
	setString(&f.DeathPostalCode, req.DeathPostalCode)
	setString(&f.DeathLocality, req.DeathLocality)

	setString(&f.IncomeComments, req.IncomeComments)
	setFloat(&f.SalaryAmount, req.SalaryAmount)
	setInt(&f.SalaryPayDay, req.SalaryPayDay)
	if req.SalaryFrequency != nil {
		f.SalaryFrequency = models.PaymentFrequency(*req.SalaryFrequency)
	}

	setString(&f.Income1Nature, req.Income1Nature)
	setFloat(&f.Income1Amount, req.Income1Amount)
	setInt(&f.Income1PayDay, req.Income1PayDay)
	if req.Income1Frequency != nil {
		f.Income1Frequency = models.PaymentFrequency(*req.Income1Frequency)
	}
	setString(&f.Income2Nature, req.Income2Nature)
	setFloat(&f.Income2Amount, req.Income2Amount)
	setInt(&f.Income2PayDay, req.Income2PayDay)
	if req.Income2Frequency != nil {
		f.Income2Frequency = models.PaymentFrequency(*req.Income2Frequency)
	}
	setString(&f.Income3Nature, req.Income3Nature)
	setFloat(&f.Income3Amount, req.Income3Amount)
	setInt(&f.Income3PayDay, req.Income3PayDay)
	if req.Income3Frequency != nil {
		f.Income3Frequency = models.PaymentFrequency(*req.Income3Frequency)
	}

	setString(&f.InvoiceNumber, req.InvoiceNumber)
	setDate(&f.InvoiceDate, req.InvoiceDate)
	setFloat(&f.InvoiceAmount, req.InvoiceAmount)
	setFloat(&f.AppliedRate, req.AppliedRate)
	setFloat(&f.PreviousAmounts, req.PreviousAmounts)
	setFloat(&f.BillingResume, req.BillingResume)
	setFloat(&f.Discount, req.Discount)

	setString(&f.Memo1, req.Memo1)
	setString(&f.Memo2, req.Memo2)
	setString(&f.Memo3, req.Memo3)
	setString(&f.Memo4, req.Memo4)
	setString(&f.Memo5, req.Memo5)
}
