package shell

import (
	"errors"
	"strings"

	"github.com/aanand-mishra/records-cli/internal/inventory"
	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/aanand-mishra/records-cli/internal/utils/response"
	"github.com/aanand-mishra/records-cli/internal/validation"
)

// InventoryMenu returns the five-choice menu of the inventory program.
func InventoryMenu(s *Shell, inv *inventory.Inventory) Menu {
	c := inventoryCommands{sh: s, inv: inv}
	return Menu{
		Title: "Inventory Management System",
		Items: []Item{
			{Label: "Add Product", Run: c.add},
			{Label: "Update Product Quantity", Run: c.updateQuantity},
			{Label: "Display All Products", Run: c.list},
			{Label: "Display Total Inventory Value", Run: c.totalValue},
		},
		Exit: Item{Label: "Exit", Run: c.exit},
	}
}

type inventoryCommands struct {
	sh  *Shell
	inv *inventory.Inventory
}

func (c inventoryCommands) fail(err error) {
	response.WriteError(c.sh.Out(), validation.ProductIDLabel, err)
}

// saved reports the outcome of the save that followed a mutation. It
// returns false only for errors other than a failed save.
func (c inventoryCommands) saved(err error) bool {
	var perr *types.PersistenceError
	switch {
	case err == nil:
		c.sh.Printf("Inventory saved successfully.\n")
		return true
	case errors.As(err, &perr):
		c.fail(err)
		c.sh.Printf("The change is kept in memory but is not on disk.\n")
		return true
	default:
		c.fail(err)
		return false
	}
}

func (c inventoryCommands) add() {
	c.sh.Printf("\n=== Add Product ===\n")

	id, ok := c.sh.Prompt("Enter Product ID: ")
	if !ok {
		return
	}
	if err := validation.ID(validation.ProductIDLabel, id, c.inv.Exists); err != nil {
		c.fail(err)
		return
	}

	name, ok := c.sh.Prompt("Enter Product Name: ")
	if !ok {
		return
	}
	if err := validation.Text(validation.ProductNameLabel, name); err != nil {
		c.fail(err)
		return
	}

	rawPrice, ok := c.sh.Prompt("Enter Price: ")
	if !ok {
		return
	}
	price, err := validation.ParsePrice(rawPrice)
	if err != nil {
		c.fail(err)
		return
	}

	rawQuantity, ok := c.sh.Prompt("Enter Quantity: ")
	if !ok {
		return
	}
	quantity, err := validation.ParseQuantity(rawQuantity)
	if err != nil {
		c.fail(err)
		return
	}

	p, err := c.inv.Add(types.Product{ID: id, Name: name, Price: price, Quantity: quantity})
	if c.saved(err) {
		c.sh.Printf("\nProduct '%s' added successfully!\n", p.Name)
	}
}

func (c inventoryCommands) updateQuantity() {
	c.sh.Printf("\n=== Update Product Quantity ===\n")

	id, ok := c.sh.Prompt("Enter Product ID to update: ")
	if !ok {
		return
	}
	id = strings.TrimSpace(id)
	p, err := c.inv.Find(id)
	if err != nil {
		c.fail(err)
		return
	}

	c.sh.Printf("\nProduct: %s\n", p.Name)
	c.sh.Printf("Current Quantity: %d\n", p.Quantity)

	raw, ok := c.sh.Prompt("Enter new Quantity: ")
	if !ok {
		return
	}
	quantity, err := validation.ParseQuantity(raw)
	if err != nil {
		c.fail(err)
		return
	}

	p, err = c.inv.UpdateQuantity(id, quantity)
	if c.saved(err) {
		c.sh.Printf("\nQuantity updated successfully! New Quantity: %d\n", p.Quantity)
	}
}

func (c inventoryCommands) list() {
	c.sh.Printf("\n=== All Products ===\n")

	products := c.inv.List()
	if len(products) == 0 {
		c.sh.Printf("No products in inventory.\n")
		return
	}
	response.WriteProducts(c.sh.Out(), products)
}

func (c inventoryCommands) totalValue() {
	c.sh.Printf("\n=== Total Inventory Value ===\n")

	if c.inv.Len() == 0 {
		c.sh.Printf("No products in inventory. Total Value: %s\n", response.Money(0))
		return
	}
	response.WriteInventoryValue(c.sh.Out(), c.inv.TotalValue(), c.inv.Breakdown())
}

func (c inventoryCommands) exit() {
	c.sh.Printf("\nSaving all changes...\n")
	c.saved(c.inv.Save())
	c.sh.Printf("Thank you for using the Inventory Management System!\n")
}
