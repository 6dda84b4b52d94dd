package parser

import "regexp"

// Category is one of the fixed 10-value spending taxonomy.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategorySalary        Category = "salary"
	CategoryTransfer      Category = "transfer"
	CategoryOther         Category = "other"
)

// Categories returns the full taxonomy in classification priority order.
func Categories() []Category {
	categories := make([]Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		categories = append(categories, rule.category)
	}
	return append(categories, CategoryOther)
}

type categoryRule struct {
	category Category
	pattern  *regexp.Regexp
}

// categoryRules is evaluated in order; keywords overlap across groups
// ("pago", "transferencia"), so earlier categories take precedence and
// reordering this slice changes classification results.
var categoryRules = []categoryRule{
	{CategoryFood, regexp.MustCompile(`supermercado|mercado|alimento|comida|restaurante|delivery|uber eats|pedidos ya`)},
	{CategoryTransport, regexp.MustCompile(`gasolina|combustible|peaje|uber|taxi|indriver|transporte`)},
	{CategoryUtilities, regexp.MustCompile(`edenorte|edesur|edeeste|claro|altice|viva|tricom|agua|luz|electricidad`)},
	{CategoryEntertainment, regexp.MustCompile(`cine|netflix|spotify|entretenimiento|juego`)},
	{CategoryShopping, regexp.MustCompile(`tienda|compra|amazon|jumbo|sirena|plaza|mall`)},
	{CategoryHealth, regexp.MustCompile(`farmacia|hospital|clínica|médico|salud|laboratorio`)},
	{CategoryEducation, regexp.MustCompile(`universidad|colegio|escuela|curso|educación`)},
	{CategorySalary, regexp.MustCompile(`salario|nómina|pago.*empresa`)},
	{CategoryTransfer, regexp.MustCompile(`transferencia`)},
}

// ClassifyCategory buckets the combined text into the taxonomy, defaulting
// to CategoryOther when no keyword group matches.
func ClassifyCategory(content string) Category {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(content) {
			return rule.category
		}
	}
	return CategoryOther
}

// CategoryInfo describes how a category is presented to users.
type CategoryInfo struct {
	Label string
	Icon  string
	Color string
}

// categoryInfo is exhaustive over the taxonomy; Info falls back to the
// CategoryOther entry for values outside it rather than inventing one.
var categoryInfo = map[Category]CategoryInfo{
	CategoryFood:          {Label: "Comida", Icon: "coffee", Color: "#F59E0B"},
	CategoryTransport:     {Label: "Transporte", Icon: "navigation", Color: "#3B82F6"},
	CategoryUtilities:     {Label: "Servicios", Icon: "zap", Color: "#8B5CF6"},
	CategoryEntertainment: {Label: "Entretenimiento", Icon: "film", Color: "#EC4899"},
	CategoryShopping:      {Label: "Compras", Icon: "shopping-bag", Color: "#10B981"},
	CategoryHealth:        {Label: "Salud", Icon: "heart", Color: "#EF4444"},
	CategoryEducation:     {Label: "Educación", Icon: "book", Color: "#6366F1"},
	CategorySalary:        {Label: "Salario", Icon: "briefcase", Color: "#14B8A6"},
	CategoryTransfer:      {Label: "Transferencia", Icon: "repeat", Color: "#6B7280"},
	CategoryOther:         {Label: "Otros", Icon: "more-horizontal", Color: "#9CA3AF"},
}

func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryOther]
}

// Valid reports whether c is one of the 10 taxonomy values.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}
