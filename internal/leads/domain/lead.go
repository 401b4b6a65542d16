package domain

import (
	"errors"
	"time"

	"backoffice/internal/shared/domain"
)

// LeadID représente l'identifiant unique d'un prospect
type LeadID int64

// LeadStatus représente le statut d'un prospect dans le pipeline
// commercial
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusContacted  LeadStatus = "contacted"
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusQualified  LeadStatus = "qualified"
	LeadStatusWon        LeadStatus = "won"
	LeadStatusConverted  LeadStatus = "converted"
	LeadStatusLost       LeadStatus = "lost"
	LeadStatusArchived   LeadStatus = "archived"
)

// IsInProgress regroupe les statuts "contacté" et "en cours", comptés
// dans le même seau sur le tableau de bord
func (s LeadStatus) IsInProgress() bool {
	return s == LeadStatusInProgress || s == LeadStatusContacted
}

// Lead représente un prospect: contact, statut pipeline et revenu
// potentiel estimé. Les ~26 champs de qualification du formulaire
// détaillé vivent dans Details.
type Lead struct {
	id               LeadID
	firstName        string
	lastName         string
	email            string
	phone            string
	postcode         string
	status           LeadStatus
	potentialRevenue domain.Money
	createdAt        time.Time
	details          *LeadDetails
}

// NewLead crée un nouveau prospect avec validation
func NewLead(
	id LeadID,
	firstName string,
	lastName string,
	email string,
	phone string,
	postcode string,
	status LeadStatus,
	potentialRevenue domain.Money,
	createdAt time.Time,
	details *LeadDetails,
) (*Lead, error) {
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusInProgress, LeadStatusQualified,
		LeadStatusWon, LeadStatusConverted, LeadStatusLost, LeadStatusArchived:
	default:
		return nil, errors.New("invalid lead status")
	}

	return &Lead{
		id:               id,
		firstName:        firstName,
		lastName:         lastName,
		email:            email,
		phone:            phone,
		postcode:         postcode,
		status:           status,
		potentialRevenue: potentialRevenue,
		createdAt:        createdAt,
		details:          details,
	}, nil
}

// ID retourne l'identifiant du prospect
func (l *Lead) ID() LeadID {
	return l.id
}

// FirstName retourne le prénom
func (l *Lead) FirstName() string {
	return l.firstName
}

// LastName retourne le nom
func (l *Lead) LastName() string {
	return l.lastName
}

// Email retourne l'email de contact
func (l *Lead) Email() string {
	return l.email
}

// Phone retourne le téléphone de contact
func (l *Lead) Phone() string {
	return l.phone
}

// Postcode retourne le code postal du prospect
func (l *Lead) Postcode() string {
	return l.postcode
}

// Status retourne le statut pipeline
func (l *Lead) Status() LeadStatus {
	return l.status
}

// PotentialRevenue retourne le revenu potentiel estimé HT
func (l *Lead) PotentialRevenue() domain.Money {
	return l.potentialRevenue
}

// CreatedAt retourne la date de création
func (l *Lead) CreatedAt() time.Time {
	return l.createdAt
}

// Details retourne les champs du formulaire détaillé (peut être nil
// pour un lead issu du formulaire court)
func (l *Lead) Details() *LeadDetails {
	return l.details
}

// LeadDetails regroupe les champs optionnels du formulaire détaillé.
// Champs exportés: ces valeurs transitent telles quelles entre la
// couche d'accès aux données, le calcul de complétude et l'export.
type LeadDetails struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	BeneficiaryEmail     string `json:"beneficiaryEmail"`
	BeneficiaryPhone     string `json:"beneficiaryPhone"`
	BeneficiaryFirstName string `json:"beneficiaryFirstName"`
	BeneficiaryLastName  string `json:"beneficiaryLastName"`
	WorkAddress          string `json:"workAddress"`
	WorkCity             string `json:"workCity"`
	WorkPostcode         string `json:"workPostcode"`

	Company             string  `json:"company"`
	HQAddress           string  `json:"hqAddress"`
	HQCity              string  `json:"hqCity"`
	HQPostcode          string  `json:"hqPostcode"`
	WorkCompanyName     string  `json:"workCompanyName"`
	WorkRegion          string  `json:"workRegion"`
	WorkClimateZone     string  `json:"workClimateZone"`
	BeneficiaryTitle    string  `json:"beneficiaryTitle"`
	BeneficiaryFunction string  `json:"beneficiaryFunction"`
	BeneficiaryLandline string  `json:"beneficiaryLandline"`
	CadastralParcel     string  `json:"cadastralParcel"`
	SurfaceM2           float64 `json:"surfaceM2"`

	Siret              string `json:"siret"`
	Siren              string `json:"siren"`
	WorkSiret          string `json:"workSiret"`
	QualificationScore int    `json:"qualificationScore"` // 0-10, attribué par l'équipe commerciale
	ExteriorPhotoURL   string `json:"exteriorPhotoUrl"`
	CadastralPhotoURL  string `json:"cadastralPhotoUrl"`
	InternalNotes      string `json:"internalNotes"`
	CategoryID         string `json:"categoryId"`
}
