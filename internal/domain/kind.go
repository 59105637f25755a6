package domain

// Kind identifies which entity a draft, record or mutation belongs to.
type Kind string

const (
	KindProduct      Kind = "product"
	KindBrand        Kind = "brand"
	KindCategory     Kind = "category"
	KindService      Kind = "service"
	KindEvent        Kind = "event"
	KindQuote        Kind = "quote"
	KindSupportCase  Kind = "support_case"
	KindInquiry      Kind = "inquiry"
	KindRegistration Kind = "registration"
)

// CatalogKinds lists the entities managed through the admin catalog pages.
var CatalogKinds = []Kind{KindProduct, KindBrand, KindCategory, KindService, KindEvent}

// LeadKinds lists the inbound lead records.
var LeadKinds = []Kind{KindQuote, KindSupportCase, KindInquiry, KindRegistration}

var kindCollections = map[Kind]string{
	KindProduct:      "products",
	KindBrand:        "brands",
	KindCategory:     "categories",
	KindService:      "services",
	KindEvent:        "events",
	KindQuote:        "quotes",
	KindSupportCase:  "support",
	KindInquiry:      "inquiries",
	KindRegistration: "registrations",
}

var kindLabels = map[Kind]string{
	KindProduct:      "Product",
	KindBrand:        "Brand",
	KindCategory:     "Category",
	KindService:      "Service",
	KindEvent:        "Event",
	KindQuote:        "Quote Request",
	KindSupportCase:  "Support Case",
	KindInquiry:      "Inquiry",
	KindRegistration: "Event Registration",
}

// Collection returns the admin collection segment, e.g. "products" for /admin/products.
func (k Kind) Collection() string {
	return kindCollections[k]
}

// Label returns a human readable name.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

func (k Kind) IsCatalog() bool {
	for _, c := range CatalogKinds {
		if c == k {
			return true
		}
	}
	return false
}
