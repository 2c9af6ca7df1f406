package domain

// Role type to distinguish between user roles as carried in the token claims.
type Role string

// The backend only distinguishes admins explicitly; any other role value is a trainee.
const (
	RoleAdmin   Role = "Admin"
	RoleTrainee Role = "Trainee"
)

// WeightSample is one body-weight measurement. The backend appends a sample
// whenever the profile weight changes; the client never rewrites history.
type WeightSample struct {
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}

// User is the full profile of an authenticated trainee (the Identity).
// It is refreshed wholesale from backend responses, never field-merged.
type User struct {
	ID                     int64          `json:"id"`
	FirstName              string         `json:"firstName"`
	LastName               string         `json:"lastName"`
	Age                    int            `json:"age"`
	Gender                 string         `json:"gender"`
	City                   string         `json:"city"`
	Email                  string         `json:"email"`
	PhoneNumber            string         `json:"phoneNumber"`
	Goal                   string         `json:"goal"`
	Height                 float64        `json:"height"`
	Weight                 []WeightSample `json:"weight"`
	NeckCircumference      float64        `json:"neckCircumference"`
	PecsCircumference      float64        `json:"pecsCircumference"`
	ArmCircumference       float64        `json:"armCircumference"`
	WaistCircumference     float64        `json:"waistCircumference"`
	AbdominalCircumference float64        `json:"abdominalCircumference"`
	HipsCircumference      float64        `json:"hipsCircumference"`
	ThighsCircumference    float64        `json:"thighsCircumference"`
	BodyFatPercentage      float64        `json:"bodyFatPrecentage"`
	AgreedToTerms          bool           `json:"agreedToTerms"`
	HealthDeclarationID    *int64         `json:"healthDeclarationId"`
	Menu                   *Menu          `json:"menu"`
	Plans                  []Plan         `json:"plans"`
	RegistrationDate       string         `json:"registrationDate"`
}

// CurrentWeight returns the most recent body-weight sample, or 0 if none exists.
func (u *User) CurrentWeight() float64 {
	if len(u.Weight) == 0 {
		return 0
	}
	return u.Weight[len(u.Weight)-1].Value
}

// DirectoryEntry is the reduced projection of a trainee used by admin listings.
type DirectoryEntry struct {
	ID                  int64  `json:"id"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Age                 int    `json:"age"`
	Gender              string `json:"gender"`
	City                string `json:"city"`
	AgreedToTerms       bool   `json:"agreedToTerms"`
	HealthDeclarationID *int64 `json:"healthDeclarationId"`
	RegistrationDate    string `json:"registrationDate"`
}
