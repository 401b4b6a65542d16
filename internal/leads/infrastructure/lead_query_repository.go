package infrastructure

import (
	"database/sql"
	"time"

	"backoffice/internal/leads/domain"
	shareddomain "backoffice/internal/shared/domain"
	"backoffice/internal/shared/infrastructure"
)

// LeadQueryRepository repository pour les requêtes de lecture sur les prospects
type LeadQueryRepository struct {
	infrastructure.BaseRepository
}

// NewLeadQueryRepository crée un nouveau repository de lecture pour les prospects
func NewLeadQueryRepository(db *sql.DB) *LeadQueryRepository {
	return &LeadQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
	}
}

// FindAll récupère un instantané de tous les prospects, champs du
// formulaire détaillé compris
func (r *LeadQueryRepository) FindAll() ([]*domain.Lead, error) {
	query := `
		SELECT l.id, l.first_name, l.last_name, l.email, l.phone, l.postcode,
		       l.status, l.potential_revenue, l.created_at,
		       l.beneficiary_email, l.beneficiary_phone, l.beneficiary_first_name,
		       l.beneficiary_last_name, l.work_address, l.work_city, l.work_postcode,
		       l.company, l.hq_address, l.hq_city, l.hq_postcode,
		       l.work_company_name, l.work_region, l.work_climate_zone,
		       l.beneficiary_title, l.beneficiary_function, l.beneficiary_landline,
		       l.cadastral_parcel, l.surface_m2,
		       l.siret, l.siren, l.work_siret, l.qualification_score,
		       l.exterior_photo_url, l.cadastral_photo_url, l.internal_notes, l.category_id
		FROM leads l
		ORDER BY l.created_at
	`

	rows, err := r.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// scanLead hydrate un Lead et ses détails depuis une ligne SQL.
// Les colonnes optionnelles sont NULLables en base; NULL devient la
// valeur zéro du champ (chaîne vide, 0).
func scanLead(rows *sql.Rows) (*domain.Lead, error) {
	var (
		id               int64
		firstName        string
		lastName         string
		email            string
		phone            string
		postcode         sql.NullString
		status           string
		potentialRevenue sql.NullFloat64
		createdAt        time.Time

		beneficiaryEmail     sql.NullString
		beneficiaryPhone     sql.NullString
		beneficiaryFirstName sql.NullString
		beneficiaryLastName  sql.NullString
		workAddress          sql.NullString
		workCity             sql.NullString
		workPostcode         sql.NullString
		company              sql.NullString
		hqAddress            sql.NullString
		hqCity               sql.NullString
		hqPostcode           sql.NullString
		workCompanyName      sql.NullString
		workRegion           sql.NullString
		workClimateZone      sql.NullString
		beneficiaryTitle     sql.NullString
		beneficiaryFunction  sql.NullString
		beneficiaryLandline  sql.NullString
		cadastralParcel      sql.NullString
		surfaceM2            sql.NullFloat64
		siret                sql.NullString
		siren                sql.NullString
		workSiret            sql.NullString
		qualificationScore   sql.NullInt64
		exteriorPhotoURL     sql.NullString
		cadastralPhotoURL    sql.NullString
		internalNotes        sql.NullString
		categoryID           sql.NullString
	)

	err := rows.Scan(
		&id, &firstName, &lastName, &email, &phone, &postcode,
		&status, &potentialRevenue, &createdAt,
		&beneficiaryEmail, &beneficiaryPhone, &beneficiaryFirstName,
		&beneficiaryLastName, &workAddress, &workCity, &workPostcode,
		&company, &hqAddress, &hqCity, &hqPostcode,
		&workCompanyName, &workRegion, &workClimateZone,
		&beneficiaryTitle, &beneficiaryFunction, &beneficiaryLandline,
		&cadastralParcel, &surfaceM2,
		&siret, &siren, &workSiret, &qualificationScore,
		&exteriorPhotoURL, &cadastralPhotoURL, &internalNotes, &categoryID,
	)
	if err != nil {
		return nil, err
	}

	details := &domain.LeadDetails{
		Email:     email,
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,

		BeneficiaryEmail:     beneficiaryEmail.String,
		BeneficiaryPhone:     beneficiaryPhone.String,
		BeneficiaryFirstName: beneficiaryFirstName.String,
		BeneficiaryLastName:  beneficiaryLastName.String,
		WorkAddress:          workAddress.String,
		WorkCity:             workCity.String,
		WorkPostcode:         workPostcode.String,
		Company:              company.String,
		HQAddress:            hqAddress.String,
		HQCity:               hqCity.String,
		HQPostcode:           hqPostcode.String,
		WorkCompanyName:      workCompanyName.String,
		WorkRegion:           workRegion.String,
		WorkClimateZone:      workClimateZone.String,
		BeneficiaryTitle:     beneficiaryTitle.String,
		BeneficiaryFunction:  beneficiaryFunction.String,
		BeneficiaryLandline:  beneficiaryLandline.String,
		CadastralParcel:      cadastralParcel.String,
		SurfaceM2:            surfaceM2.Float64,
		Siret:                siret.String,
		Siren:                siren.String,
		WorkSiret:            workSiret.String,
		QualificationScore:   int(qualificationScore.Int64),
		ExteriorPhotoURL:     exteriorPhotoURL.String,
		CadastralPhotoURL:    cadastralPhotoURL.String,
		InternalNotes:        internalNotes.String,
		CategoryID:           categoryID.String,
	}

	revenue, _ := shareddomain.NewMoney(shareddomain.SafeAmount(potentialRevenue.Float64))

	return domain.NewLead(
		domain.LeadID(id),
		firstName,
		lastName,
		email,
		phone,
		postcode.String,
		domain.LeadStatus(status),
		revenue,
		createdAt,
		details,
	)
}
