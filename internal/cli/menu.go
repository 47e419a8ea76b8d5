package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"customer-tracker/internal/database/models"
	apperrors "customer-tracker/internal/errors"
	"customer-tracker/internal/logger"
	"customer-tracker/internal/service"
)

const menuText = `
Options (enter option #):
1. Add a customer
2. Remove a customer
3. View customer(s)
4. View customers who currently have late payments
5. Update a customer's last payment made
6. Add a product
7. Remove a product
8. View product(s)
9. Edit the price of a product
10. Assign a product to a customer
11. Unassign a product from a customer
12. View product assignment(s)
13. View a customer's monthly bill
14. Exit

Selection: `

const farewellText = "\nExiting the customer tracking system. Goodbye!"

// Menu drives the interactive session. It reads selections and entry fields
// from in, renders results to out, and delegates every data operation to the
// services.
type Menu struct {
	customers   *service.CustomerService
	products    *service.ProductService
	assignments *service.AssignmentService
	log         *logger.Logger
	in          *bufio.Scanner
	out         io.Writer
	now         func() time.Time
}

// New creates a Menu bound to the given services and streams
func New(
	customers *service.CustomerService,
	products *service.ProductService,
	assignments *service.AssignmentService,
	log *logger.Logger,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		customers:   customers,
		products:    products,
		assignments: assignments,
		log:         log,
		in:          bufio.NewScanner(in),
		out:         out,
		now:         time.Now,
	}
}

// Run loops over the menu until the user selects 14 or input is exhausted.
// The farewell line is printed on every way out, matching the interrupt path
// handled by the caller.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "\nWelcome to the customer tracking system!")

	for {
		selection, ok := m.readLine(menuText)
		if !ok || selection == "14" {
			fmt.Fprintln(m.out, farewellText)
			return m.in.Err()
		}

		var err error
		switch selection {
		case "1":
			err = m.addCustomer()
		case "2":
			err = m.removeCustomer()
		case "3":
			err = m.viewCustomers()
		case "4":
			err = m.viewLateCustomers()
		case "5":
			err = m.updateLastPayment()
		case "6":
			err = m.addProduct()
		case "7":
			err = m.removeProduct()
		case "8":
			err = m.viewProducts()
		case "9":
			err = m.updatePrice()
		case "10":
			err = m.assignProduct()
		case "11":
			err = m.unassignProduct()
		case "12":
			err = m.viewAssignments()
		case "13":
			err = m.viewMonthlyBill()
		default:
			fmt.Fprintln(m.out, "\nInvalid selection! Enter a valid selection.")
		}

		if errors.Is(err, errInputClosed) {
			fmt.Fprintln(m.out, farewellText)
			return m.in.Err()
		}
		if err != nil {
			m.log.WithField("selection", selection).WithField("error", err.Error()).Error("operation failed")
			fmt.Fprintln(m.out, "\nSomething went wrong, try again.")
		}
	}
}

// errInputClosed signals that a prompt hit end of input mid-flow
var errInputClosed = errors.New("input closed")

// Option 1. Add a customer
func (m *Menu) addCustomer() error {
	name, ok := m.readLine("\nCustomer's name: ")
	if !ok {
		return errInputClosed
	}
	phone, ok := m.promptPhone()
	if !ok {
		return errInputClosed
	}
	location, ok := m.readLine("Location: ")
	if !ok {
		return errInputClosed
	}
	card, ok := m.promptCard()
	if !ok {
		return errInputClosed
	}
	signUp, ok := m.promptDate("Customer sign-up date (mm-dd-YYYY): ")
	if !ok {
		return errInputClosed
	}
	lastPayment, ok := m.promptDate("Date of last payment (mm-dd-YYYY): ")
	if !ok {
		return errInputClosed
	}

	_, err := m.customers.Add(&service.AddCustomerRequest{
		Name:        name,
		PhoneNum:    phone,
		Location:    location,
		CardNum:     card,
		SignUpDate:  signUp,
		LastPayment: lastPayment,
	})
	if errors.Is(err, apperrors.ErrCustomerExists) {
		fmt.Fprintf(m.out, "\n%s already present at %s!\n", name, location)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "\n%s added to database at %s!\n", name, location)
	return nil
}

// Option 2. Remove a customer
func (m *Menu) removeCustomer() error {
	name, ok := m.readLine("\nEnter name of customer to remove: ")
	if !ok {
		return errInputClosed
	}

	entries, err := m.customers.FindByName(name)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(m.out, "\n%s isn't a current customer!\n", name)
		return nil
	}
	renderCustomers(m.out, fmt.Sprintf("%s's Entries", name), entries)

	for {
		id, ok := m.promptID("\nChoose entry to remove (id): ")
		if !ok {
			return errInputClosed
		}
		belongs, err := m.customers.IDBelongsTo(id, name)
		if err != nil {
			return err
		}
		if !belongs {
			continue
		}
		if err := m.customers.Remove(id, name); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "\n%d. %s was removed from database!\n", id, name)
		return nil
	}
}

// Option 3. View customer(s)
func (m *Menu) viewCustomers() error {
	customers, err := m.customers.List()
	if err != nil {
		return err
	}
	renderCustomers(m.out, "All Customers", customers)
	return nil
}

// Option 4. View customers who currently have late payments
func (m *Menu) viewLateCustomers() error {
	late, err := m.customers.ListLate(m.now())
	if err != nil {
		return err
	}
	renderCustomers(m.out, "Late Customers", late)
	return nil
}

// Option 5. Update a customer's last payment made
func (m *Menu) updateLastPayment() error {
	name, ok := m.readLine("\nEnter name of customer to update last made payment: ")
	if !ok {
		return errInputClosed
	}

	entries, err := m.customers.FindByName(name)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(m.out, "\n%s isn't a current customer!\n", name)
		return nil
	}
	renderCustomers(m.out, fmt.Sprintf("%s's Entries", name), entries)

	for {
		id, ok := m.promptID("\nChoose entry to update (id): ")
		if !ok {
			return errInputClosed
		}
		belongs, err := m.customers.IDBelongsTo(id, name)
		if err != nil {
			return err
		}
		if !belongs {
			fmt.Fprintln(m.out, "Invalid id selected!")
			continue
		}
		lastPayment, ok := m.promptDate("\nDate of last payment (mm-dd-YYYY): ")
		if !ok {
			return errInputClosed
		}
		if err := m.customers.UpdateLastPayment(id, lastPayment); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "%s's last payment was updated to %s!\n", name, lastPayment.Format("01-02-2006"))
		return nil
	}
}

// Option 6. Add a product
func (m *Menu) addProduct() error {
	name, ok := m.readLine("\nProduct's name: ")
	if !ok {
		return errInputClosed
	}
	productType, ok := m.promptProductType()
	if !ok {
		return errInputClosed
	}

	// Equipment is complimentary, so the fee question only applies to services.
	var price float64
	if productType == models.ProductTypeService {
		price, ok = m.promptPrice("Service monthly fee: $")
		if !ok {
			return errInputClosed
		}
	}

	_, err := m.products.Add(&service.AddProductRequest{
		Name:  name,
		Type:  productType,
		Price: price,
	})
	if errors.Is(err, apperrors.ErrProductExists) {
		fmt.Fprintf(m.out, "\n%s: %s already in database!\n", productType, name)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "\n%s added to database!\n", name)
	return nil
}

// Option 7. Remove a product
func (m *Menu) removeProduct() error {
	name, ok := m.readLine("\nEnter name of product to remove: ")
	if !ok {
		return errInputClosed
	}

	entries, err := m.products.FindByName(name)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(m.out, "%s isn't a current product!\n", name)
		return nil
	}
	renderProducts(m.out, fmt.Sprintf("%s's Entries", name), entries)

	for {
		id, ok := m.promptID("Choose entry to remove (id): ")
		if !ok {
			return errInputClosed
		}
		belongs, err := m.products.IDBelongsTo(id, name)
		if err != nil {
			return err
		}
		if !belongs {
			continue
		}
		if err := m.products.Remove(id, name); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "%s entry #%d was removed from database!\n", name, id)
		return nil
	}
}

// Option 8. View product(s)
func (m *Menu) viewProducts() error {
	products, err := m.products.List()
	if err != nil {
		return err
	}
	renderProducts(m.out, "All Products", products)
	return nil
}

// Option 9. Edit the price of a product
func (m *Menu) updatePrice() error {
	name, ok := m.readLine("\nEnter name of product to update price: ")
	if !ok {
		return errInputClosed
	}

	entries, err := m.products.FindByName(name)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(m.out, "%s isn't a current product!\n", name)
		return nil
	}
	renderProducts(m.out, fmt.Sprintf("%s's Entries", name), entries)

	for {
		id, ok := m.promptID("Choose entry to update (id): ")
		if !ok {
			return errInputClosed
		}
		belongs, err := m.products.IDBelongsTo(id, name)
		if err != nil {
			return err
		}
		if !belongs {
			fmt.Fprintln(m.out, "Invalid id selected!")
			continue
		}
		price, ok := m.promptPrice("\nNew price of product ($): ")
		if !ok {
			return errInputClosed
		}
		if err := m.products.UpdatePrice(id, price); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "%s's price was updated to $%s!\n", name, formatPrice(price))
		return nil
	}
}

// Option 10. Assign a product to a customer. The flow loops until both the
// (name, location) and (product, price) pairs name existing entries, so only
// real pairs ever reach the assignment table.
func (m *Menu) assignProduct() error {
	for {
		customers, err := m.customers.List()
		if err != nil {
			return err
		}
		renderCustomers(m.out, "All Customers", customers)

		name, ok := m.readLine("Enter customer name: ")
		if !ok {
			return errInputClosed
		}
		location, ok := m.readLine("Enter customer's location: ")
		if !ok {
			return errInputClosed
		}
		atLocation, err := m.customers.ExistsAt(name, location)
		if err != nil {
			return err
		}
		if !atLocation {
			continue
		}

		products, err := m.products.List()
		if err != nil {
			return err
		}
		renderProducts(m.out, "All Products", products)

		product, ok := m.readLine("Choose product to assign to customer: ")
		if !ok {
			return errInputClosed
		}
		price, ok := m.promptPrice("Choose a price to assign to customer: ")
		if !ok {
			return errInputClosed
		}
		withPrice, err := m.products.ExistsWithPrice(product, price)
		if err != nil {
			return err
		}
		if !withPrice {
			continue
		}

		_, err = m.assignments.Assign(&service.AssignRequest{
			CustomerName:     name,
			CustomerLocation: location,
			ProductName:      product,
			ProductPrice:     price,
		})
		if errors.Is(err, apperrors.ErrAssignmentExists) {
			fmt.Fprintf(m.out, "%s is already assigned to %s at %s!\n", product, name, location)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(m.out, "%s assigned to %s at %s!\n", product, name, location)
		return nil
	}
}

// Option 11. Unassign a product from a customer
func (m *Menu) unassignProduct() error {
	id, ok := m.promptID("\nEnter assignment to remove (id): ")
	if !ok {
		return errInputClosed
	}

	exists, err := m.assignments.IDExists(id)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(m.out, "This id does not identify a current product assignment!")
		return nil
	}

	if err := m.assignments.Unassign(id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product unassigned from customer.")
	return nil
}

// Option 12. View product assignment(s)
func (m *Menu) viewAssignments() error {
	assignments, err := m.assignments.List()
	if err != nil {
		return err
	}
	renderAssignments(m.out, "All Product Assignments", assignments)
	return nil
}

// Option 13. View a customer's monthly bill
func (m *Menu) viewMonthlyBill() error {
	for {
		name, ok := m.readLine("\nEnter name of customer to view monthly bill: ")
		if !ok {
			return errInputClosed
		}

		hasAssignment, err := m.assignments.CustomerHasAssignment(name)
		if err != nil {
			return err
		}
		if !hasAssignment {
			fmt.Fprintf(m.out, "%s does not have any current products assigned to them!\n", name)
			continue
		}

		bill, err := m.assignments.MonthlyBill(name)
		if err != nil {
			return err
		}
		renderBill(m.out, fmt.Sprintf("%s's Monthly Bill", name), bill)
		return nil
	}
}
