package cli

import (
	"fmt"
	"io"

	"customer-tracker/internal/service"
)

// displayDate is the human-readable date format used in listings
const displayDate = "Jan 02 2006"

func renderHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n------%s------\n", title)
}

func renderFooter(w io.Writer) {
	fmt.Fprintln(w, "---------------------------")
}

func renderCustomers(w io.Writer, title string, customers []service.CustomerResponse) {
	renderHeader(w, title)
	for _, c := range customers {
		fmt.Fprintf(w, "%d. | Name: %s | Phone: %s | Address: %s | Card: %s | Joined: %s | Last Payment: %s\n",
			c.ID, c.Name, c.PhoneNum, c.Location, c.CardNum,
			c.SignUpDate.Format(displayDate), c.LastPayment.Format(displayDate))
	}
	renderFooter(w)
}

func renderProducts(w io.Writer, title string, products []service.ProductResponse) {
	renderHeader(w, title)
	for _, p := range products {
		fmt.Fprintf(w, "%d. | Name: %s | Type: %s | Price: %s\n",
			p.ID, p.Name, p.Type, formatPrice(p.Price))
	}
	renderFooter(w)
}

func renderAssignments(w io.Writer, title string, assignments []service.AssignmentResponse) {
	renderHeader(w, title)
	for _, a := range assignments {
		fmt.Fprintf(w, "%d. | Name: %s | Location: %s | Product: %s | Price: %s\n",
			a.ID, a.CustomerName, a.CustomerLocation, a.ProductName, formatPrice(a.ProductPrice))
	}
	renderFooter(w)
}

func renderBill(w io.Writer, title, bill string) {
	renderHeader(w, title)
	fmt.Fprintf(w, "------------$%s------------\n", bill)
	renderFooter(w)
}

func formatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
