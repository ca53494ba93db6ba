package cart

import (
	"github.com/sebitservices/SaborHub-sub000/errs"
	"github.com/sebitservices/SaborHub-sub000/models"
)

// Cart is the unconfirmed order for one table, consolidated by line key.
// It is a plain value safe to serialize into a session store; methods are
// not safe for concurrent use.
type Cart struct {
	Table_id string             `json:"table_id"`
	Lines    []models.OrderLine `json:"lines"`
}

func New(tableID string) *Cart {
	return &Cart{Table_id: tableID}
}

// Add registers quantity units of the product with the given modifier
// selections. If a line with the same key already exists its quantity is
// incremented and comments are joined with "; "; otherwise a new line is
// appended. Prices are whole currency units, no cents.
func (c *Cart) Add(product models.Product, selections map[string][]string, quantity int, comment string) (models.OrderLine, error) {
	if quantity <= 0 {
		return models.OrderLine{}, &errs.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if product.Product_id == "" {
		return models.OrderLine{}, &errs.ValidationError{Field: "product_id", Reason: "is required"}
	}

	unitPrice, err := unitPrice(product, selections)
	if err != nil {
		return models.OrderLine{}, err
	}

	key := LineKey(product.Product_id, selections)
	for i := range c.Lines {
		if c.Lines[i].Line_key != key {
			continue
		}
		c.Lines[i].Quantity += quantity
		c.Lines[i].Comment = joinComments(c.Lines[i].Comment, comment)
		return c.Lines[i], nil
	}

	name := ""
	if product.Name != nil {
		name = *product.Name
	}
	line := models.OrderLine{
		Line_key:            key,
		Product_id:          product.Product_id,
		Product_name:        name,
		Modifier_selections: selections,
		Unit_price:          unitPrice,
		Quantity:            quantity,
		Comment:             comment,
	}
	c.Lines = append(c.Lines, line)
	return line, nil
}

// Decrement lowers the line's quantity by one, dropping the line when it
// reaches zero. Unknown keys are a no-op.
func (c *Cart) Decrement(lineKey string) {
	for i := range c.Lines {
		if c.Lines[i].Line_key != lineKey {
			continue
		}
		c.Lines[i].Quantity--
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// Remove drops the line unconditionally regardless of quantity.
func (c *Cart) Remove(lineKey string) {
	for i := range c.Lines {
		if c.Lines[i].Line_key == lineKey {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total sums unit price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Unit_price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// unitPrice is the base price plus the extra price of every selected
// option. Unknown modifier or option ids fail validation before any
// store call sees the line.
func unitPrice(product models.Product, selections map[string][]string) (float64, error) {
	price := 0.0
	if product.Price != nil {
		price = *product.Price
	}
	for modifierID, optionIDs := range selections {
		if len(optionIDs) == 0 {
			continue
		}
		modifier := findModifier(product.Modifiers, modifierID)
		if modifier == nil {
			return 0, &errs.ValidationError{Field: "modifier_selections", Reason: "unknown modifier " + modifierID}
		}
		for _, optionID := range optionIDs {
			option := findOption(modifier.Options, optionID)
			if option == nil {
				return 0, &errs.ValidationError{Field: "modifier_selections", Reason: "unknown option " + optionID}
			}
			price += option.Extra_price
		}
	}
	return price, nil
}

func findModifier(modifiers []models.Modifier, id string) *models.Modifier {
	for i := range modifiers {
		if modifiers[i].Modifier_id == id {
			return &modifiers[i]
		}
	}
	return nil
}

func findOption(options []models.ModifierOption, id string) *models.ModifierOption {
	for i := range options {
		if options[i].Option_id == id {
			return &options[i]
		}
	}
	return nil
}

func joinComments(existing, added string) string {
	if existing == "" {
		return added
	}
	if added == "" {
		return existing
	}
	return existing + "; " + added
}
