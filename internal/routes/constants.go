package routes

var (
	PracticaDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	SignupDurationSecondsBuckets   = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	ListPracticasRouteAPI  = "GET /api/practicas"
	GetPracticaRouteAPI    = "GET /api/practicas/{id}"
	CreatePracticaRouteAPI = "POST /api/practicas"
	DeletePracticaRouteAPI = "DELETE /api/practicas/{id}"
	TogglePracticaRouteAPI = "PUT /api/practicas/{id}"
	ListUsersRouteAPI      = "GET /api/users"
	SignupRouteAPI         = "POST /api/users"
	MetricsRouteAPI        = "GET /metrics"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// Error messages
	ErrInvalidContentType      = "Request Content-Type must be application/json"
	ErrInvalidRequestBody      = "Invalid request body"
	ErrValidationFailed        = "data validation failed"
	ErrPracticaNotFoundMsg     = "Practica no encontrada"
	ErrMissingFieldsMsg        = "Faltan campos obligatorios"
	ErrInvalidFechaMsg         = "Invalid fecha value"
	ErrAllFieldsRequiredMsg    = "All fields are required."
	ErrPasswordTooShortMsg     = "Password must be at least 3 characters long."
	ErrUsernameExistsMsg       = "Username already exists."
	ErrFailedToEncodeResponse  = "Failed to encode response"
	ErrFailedToListPracticas   = "Failed to list practicas"
	ErrFailedToCreatePractica  = "Failed to create practica"
	ErrFailedToDeletePractica  = "Failed to delete practica"
	ErrFailedToTogglePractica  = "Failed to toggle practica"
	ErrFailedToListUsers       = "Failed to list users"
	ErrFailedToRegisterUser    = "Failed to register user"
	ErrInvalidContentTypeFmt   = "invalid content-type: %s"

	// metrics constants
	PracticaRequestsTotal         = "practica_requests_total"
	PracticaRequestsTotalHelp     = "Total number of practica requests received"
	PracticaErrorsTotal           = "practica_errors_total"
	PracticaErrorsTotalHelp       = "Total number of errors during practica requests"
	PracticaDurationSeconds       = "practica_duration_seconds"
	PracticaDurationSecondsHelp   = "Duration of practica requests in seconds"
	PracticaCreatedTotal          = "practica_created_total"
	PracticaCreatedTotalHelp      = "Total number of practicas created"
	PracticaDeletedTotal          = "practica_deleted_total"
	PracticaDeletedTotalHelp      = "Total number of practicas deleted"
	PracticaToggledTotal          = "practica_toggled_total"
	PracticaToggledTotalHelp      = "Total number of practica estado toggles"
	SignupRequestsTotal           = "signup_requests_total"
	SignupRequestsTotalHelp       = "Total number of signup requests received"
	SignupSuccessTotal            = "signup_success_total"
	SignupSuccessTotalHelp        = "Total number of successful signup requests"
	SignupErrorsTotal             = "signup_errors_total"
	SignupErrorsTotalHelp         = "Total number of errors during signup requests"
	SignupDurationSeconds         = "signup_duration_seconds"
	SignupDurationSecondsHelp     = "Duration of signup requests in seconds"
	UserListRequestsTotal         = "user_list_requests_total"
	UserListRequestsTotalHelp     = "Total number of user list requests received"
	HTTPRequestsTotal             = "http_requests_total"
	HTTPRequestsTotalHelp         = "Total number of HTTP requests by method and path"
)
