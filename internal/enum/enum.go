package enum

// ── Group A: State machines ──

const (
	TicketStatusNew      = "NEW"
	TicketStatusCooking  = "COOKING"
	TicketStatusPrepared = "PREPARED"
)

const (
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusSeated    = "SEATED"
	ReservationStatusCancelled = "CANCELLED"
	ReservationStatusNoShow    = "NO_SHOW"
)

// ── Group B: Roles ──

const (
	RoleOwner     = "OWNER"
	RoleManager   = "MANAGER"
	RoleBartender = "BARTENDER"
	RoleKitchen   = "KITCHEN"
	RoleWaiter    = "WAITER"
	RoleSecurity  = "SECURITY"
	RoleDeveloper = "DEVELOPER"
)

// ── Group C: Catalog labels ──

const (
	CategoryNonAlcoholic = "NON_ALCOHOLIC"
	CategoryAlcoholic    = "ALCOHOLIC"
	CategoryFood         = "FOOD"
)

const (
	SubcategoryShots   = "SHOTS"
	SubcategoryGlass   = "GLASS"
	SubcategoryPitcher = "PITCHER"
	SubcategoryBottled = "BOTTLED"
)

const (
	StationKitchen = "KITCHEN"
	StationBar     = "BAR"
)

const (
	TableStatusVacant   = "VACANT"
	TableStatusOccupied = "OCCUPIED"
	TableStatusReserved = "RESERVED"
)

const (
	CustomerTypeWalkIn = "WALK_IN"
	CustomerTypeTable  = "TABLE"
)

// ── Group D: Configurable labels ──

const (
	VoucherTypePercentage = "PERCENTAGE"
	VoucherTypeFixed      = "FIXED_AMOUNT"
	VoucherTypeFreeItem   = "FREE_ITEM"
	VoucherTypeBogo       = "BOGO"
)

const (
	NotifyPriorityLow    = "LOW"
	NotifyPriorityMedium = "MEDIUM"
	NotifyPriorityHigh   = "HIGH"
	NotifyPriorityUrgent = "URGENT"
)

const (
	NotifyTypeOrder       = "ORDER"
	NotifyTypeInventory   = "INVENTORY"
	NotifyTypeStaff       = "STAFF"
	NotifyTypeSystem      = "SYSTEM"
	NotifyTypeReservation = "RESERVATION"
	NotifyTypeVoucher     = "VOUCHER"
)
