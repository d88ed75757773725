package constants

// Session phase
const (
	PhaseNoDatesSelected    = "NoDatesSelected"
	PhaseLoading            = "Loading"
	PhaseDatesSelected      = "DatesSelected"
	PhaseCatalogUnavailable = "CatalogUnavailable"
	PhaseCheckoutHandoff    = "CheckoutHandoff"
)

// Trạng thái giỏ hàng trả về cho client
const (
	StateNoDatesSelected    = "NoDatesSelected"
	StateLoading            = "Loading"
	StateCartEmpty          = "DatesSelected(cartEmpty)"
	StateCartNonEmpty       = "DatesSelected(cartNonEmpty)"
	StateCatalogUnavailable = "CatalogUnavailable"
	StateCheckoutHandoff    = "CheckoutHandoff"
)

// Trạng thái hiển thị danh sách phòng
const (
	AvailabilityLoading       = "loading"
	AvailabilityUnavailable   = "unavailable"
	AvailabilityEmpty         = "empty"
	AvailabilityNoneAvailable = "none_available"
	AvailabilityNoMatch       = "no_match"
	AvailabilityReady         = "ready"
)

// Nguồn dữ liệu phòng
const (
	CatalogSourceDB   = "db"
	CatalogSourceHTTP = "http"
)

// Nơi lưu phiên giỏ hàng
const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// Định dạng ngày
const (
	DateLayout       = "2006-01-02"
	LegacyDateLayout = "02/01/2006"
)
