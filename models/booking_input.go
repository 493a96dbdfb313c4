package models

// BookingLineInput is one requested treatment line on a new booking.
type BookingLineInput struct {
	ServiceID   string `json:"serviceId,omitempty"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	StaffMember string `json:"staffMember,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// BookingInput carries the data for the booking-creation workflow. Either
// Services is supplied (normalized path) or the legacy Price+Service pair
// is (flat path); CustomerName lets legacy callers book without a customer
// record.
type BookingInput struct {
	CustomerID   string             `json:"customerId,omitempty"`
	CustomerName string             `json:"customerName,omitempty"`
	Date         string             `json:"date"`
	Time         string             `json:"time"`
	Notes        string             `json:"notes,omitempty"`
	Services     []BookingLineInput `json:"services,omitempty"`

	// Legacy flat fields.
	Price   *int   `json:"price,omitempty"`
	Service string `json:"service,omitempty"`
}

// CustomerInput carries the data for creating a customer.
type CustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ProductInput carries the data for creating an inventory product.
type ProductInput struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category,omitempty"`
	CurrentStock int    `json:"currentStock"`
	MinStock     int    `json:"minStock"`
	SellingPrice int    `json:"sellingPrice"`
	CostPrice    int    `json:"costPrice"`
	Unit         string `json:"unit,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ServiceInput carries the data for creating a catalog service. IsActive is
// a pointer so an omitted flag defaults to active.
type ServiceInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration"`
	BasePrice   int    `json:"basePrice"`
	Category    string `json:"category,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
