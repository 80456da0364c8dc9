package presentation

const (
	FileField       = "file"
	CaptionField    = "caption"
	SearchTermField = "searchTerm"
	PostedByField   = "postedBy"
	FirstNameField  = "firstName"
	LastNameField   = "lastName"
	UsernameField   = "username"

	IDParam         = "id"
	SearchTermParam = "searchTerm"

	DefaultPort       = 5000
	DefaultCORSOrigin = "http://localhost:4200"
	DefaultBodyLimit  = "10M"
	DefaultRateLimit  = 20
)
