package digistoredomain

// PurchaseList é uma página de listPurchases
type PurchaseList struct {
	PageNo       Count      `json:"page_no"`
	PageSize     Count      `json:"page_size"`
	PageCount    Count      `json:"page_count"`
	ItemCount    Count      `json:"item_count"`
	PurchaseList []Purchase `json:"purchase_list"`
}

// Purchase é um registro de compra; usado só para contar pedidos, nunca persistido
type Purchase struct {
	ID              ID     `json:"id"`
	CreatedAt       string `json:"created_at"` // "YYYY-MM-DD HH:MM:SS"
	MainProductID   ID     `json:"main_product_id"`
	MainProductName string `json:"main_product_name"`
	BillingType     string `json:"billing_type"`
	BillingStatus   string `json:"billing_status"`
}

// CreatedDay retorna o dia de criação da compra ("YYYY-MM-DD")
func (p Purchase) CreatedDay() string {
	if len(p.CreatedAt) < 10 {
		return p.CreatedAt
	}
	return p.CreatedAt[:10]
}

// ProductList é o retorno de listProducts
type ProductList struct {
	Products []Product `json:"products"`
}

type Product struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	NameIntern string `json:"name_intern,omitempty"`
}

// PurchaseQuery são os filtros de listPurchases
type PurchaseQuery struct {
	From     string // "YYYY-MM-DD"
	To       string // "YYYY-MM-DD"
	PageNo   int
	PageSize int
}
