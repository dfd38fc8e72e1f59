package dto

type ProfileRequest struct {
	FullName    string `json:"full_name" validate:"required,max=50"`
	Address1    string `json:"address1" validate:"required,max=100"`
	Address2    string `json:"address2" validate:"omitempty,max=100"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,usstate"`
	ZipCode     string `json:"zip_code" validate:"required,min=5,max=9"`
	Preferences string `json:"preferences"`
}

// AvailabilityRequest carries dates in YYYY-MM-DD form. Submitted dates are
// upserted; dates already on the profile but absent here are left untouched.
type AvailabilityRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
}

// SkillsRequest follows the same additive-upsert policy as availabilities.
type SkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,required,max=50"`
}
