package domain

import (
	"fmt"
	"strings"
)

// ProductGroup é a categoria usada para agrupar os pedidos no dashboard
type ProductGroup string

const (
	ProductGroupPAC          ProductGroup = "PAC"
	ProductGroupPACL         ProductGroup = "PACL"
	ProductGroupTinyPAC      ProductGroup = "Tiny-PAC"
	ProductGroupClub         ProductGroup = "Club"
	ProductGroupLightProgram ProductGroup = "Leicht 2.0"
	ProductGroupEvent        ProductGroup = "Event 2026"
)

// ProductGroups lista todos os grupos conhecidos, na ordem de exibição
var ProductGroups = []ProductGroup{
	ProductGroupPAC,
	ProductGroupPACL,
	ProductGroupTinyPAC,
	ProductGroupClub,
	ProductGroupLightProgram,
	ProductGroupEvent,
}

// IsValid informa se o grupo pertence à enumeração
func (g ProductGroup) IsValid() bool {
	for _, group := range ProductGroups {
		if g == group {
			return true
		}
	}
	return false
}

// ClassificationRule associa um trecho do nome do produto a um grupo
type ClassificationRule struct {
	Pattern string
	Group   ProductGroup
}

// ClassificationRules é a tabela ordenada de regras; a primeira que casar vence.
// Padrões mais específicos vêm antes dos mais genéricos ("PACL" e "Tiny" contêm "PAC").
var ClassificationRules = []ClassificationRule{
	{Pattern: "Leicht", Group: ProductGroupLightProgram},
	{Pattern: "Event", Group: ProductGroupEvent},
	{Pattern: "PACL", Group: ProductGroupPACL},
	{Pattern: "Tiny", Group: ProductGroupTinyPAC},
	{Pattern: "Club", Group: ProductGroupClub},
	{Pattern: "PAC", Group: ProductGroupPAC},
}

// Classify mapeia o nome do produto para um grupo. O segundo retorno é false quando
// nenhuma regra casa; nesse caso o pedido fica fora da contagem por grupo.
func Classify(productName string) (ProductGroup, bool) {
	for _, rule := range ClassificationRules {
		if strings.Contains(productName, rule.Pattern) {
			return rule.Group, true
		}
	}
	return "", false
}

// ProductClassifier combina as regras por nome com um mapa opcional de IDs de produto.
// O mapa por ID é só um sinal secundário, consultado quando nenhuma regra casa.
type ProductClassifier struct {
	groupsByProductID map[string]ProductGroup
}

func NewProductClassifier(groupsByProductID map[string]ProductGroup) *ProductClassifier {
	if groupsByProductID == nil {
		groupsByProductID = map[string]ProductGroup{}
	}
	return &ProductClassifier{groupsByProductID: groupsByProductID}
}

// Classify classifica pelo nome e, se não houver regra, pelo ID do produto
func (c *ProductClassifier) Classify(productName, productID string) (ProductGroup, bool) {
	if group, ok := Classify(productName); ok {
		return group, true
	}

	if c == nil || productID == "" {
		return "", false
	}

	group, ok := c.groupsByProductID[productID]
	return group, ok
}

// ParseProductGroupIDs lê pares "id:Grupo" (ex.: "12345:PACL"). Entradas vazias são ignoradas.
func ParseProductGroupIDs(pairs []string) (map[string]ProductGroup, error) {
	groups := make(map[string]ProductGroup, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		id, name, found := strings.Cut(pair, ":")
		id = strings.TrimSpace(id)
		group := ProductGroup(strings.TrimSpace(name))
		if !found || id == "" {
			return nil, fmt.Errorf("par de produto inválido %q: use id:Grupo", pair)
		}
		if !group.IsValid() {
			return nil, fmt.Errorf("grupo de produto desconhecido %q no par %q", group, pair)
		}

		groups[id] = group
	}
	return groups, nil
}

// OrdersByGroup conta pedidos por grupo de produto
type OrdersByGroup map[ProductGroup]int

// NewOrdersByGroup cria o mapa com todos os grupos zerados
func NewOrdersByGroup() OrdersByGroup {
	orders := make(OrdersByGroup, len(ProductGroups))
	for _, group := range ProductGroups {
		orders[group] = 0
	}
	return orders
}

// Clone retorna uma cópia do mapa
func (o OrdersByGroup) Clone() OrdersByGroup {
	clone := NewOrdersByGroup()
	for group, count := range o {
		clone[group] = count
	}
	return clone
}

// Total soma os pedidos de todos os grupos
func (o OrdersByGroup) Total() int {
	total := 0
	for _, count := range o {
		total += count
	}
	return total
}
