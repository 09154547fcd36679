package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/configs"
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/repository"
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/services"
)

// app wires the services together and owns the one live session.
// Everything here is presentation: parsing lines, printing tables, and
// mapping engine errors onto user-facing messages.
type app struct {
	auth     *services.AuthService
	menu     *services.MenuService
	orders   *services.OrderService
	feedback *services.FeedbackService

	session *services.Session
	in      *bufio.Scanner
}

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedMenu(db); err != nil {
		log.Fatalf("seed menu: %v", err)
	}

	a := &app{
		auth:     services.NewAuthService(repository.NewUserRepository(db)),
		menu:     services.NewMenuService(repository.NewMenuRepository(db)),
		orders:   services.NewOrderService(db, repository.NewOrderRepository(db)),
		feedback: services.NewFeedbackService(repository.NewFeedbackRepository(db)),
		in:       bufio.NewScanner(os.Stdin),
	}

	fmt.Println("Welcome to the restaurant. Type 'help' for commands.")
	a.run()
}

func (a *app) run() {
	for {
		if a.session == nil {
			fmt.Print("> ")
		} else {
			fmt.Printf("%s> ", a.session.Username)
		}
		if !a.in.Scan() {
			return
		}
		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		if cmd == "exit" || cmd == "quit" {
			return
		}
		if a.session == nil {
			a.dispatchLoggedOut(cmd)
		} else {
			a.dispatchLoggedIn(cmd, args)
		}
	}
}

func (a *app) dispatchLoggedOut(cmd string) {
	switch cmd {
	case "help":
		fmt.Println("commands: login, signup, exit")
	case "login":
		a.handleLogin()
	case "signup":
		a.handleSignup()
	default:
		fmt.Println("Please log in first. Commands: login, signup, exit")
	}
}

func (a *app) dispatchLoggedIn(cmd string, args []string) {
	switch cmd {
	case "help":
		fmt.Println("commands: menu, add <item-id> [qty], cart, remove <item-id>, clear, confirm, history, feedback, logout, exit")
	case "menu":
		a.showMenu()
	case "add":
		a.handleAdd(args)
	case "cart":
		a.showCart()
	case "remove":
		a.handleRemove(args)
	case "clear":
		a.session.Cart.Clear()
		fmt.Println("Order cleared.")
	case "confirm":
		a.handleConfirm()
	case "history":
		a.showHistory()
	case "feedback":
		a.handleFeedback()
	case "logout":
		// Discards the session and any unconfirmed cart.
		a.session = nil
		fmt.Println("Logged out.")
	default:
		fmt.Println("Unknown command. Type 'help'.")
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) handleLogin() {
	username := a.prompt("Username: ")
	password := a.prompt("Password: ")

	user, err := a.auth.Login(username, password)
	if err != nil {
		a.printErr(err)
		return
	}
	a.session = services.NewSession(user)
	fmt.Printf("Welcome, %s!\n", user.Username)
}

func (a *app) handleSignup() {
	username := a.prompt("Username: ")
	password := a.prompt("Password: ")
	confirm := a.prompt("Confirm password: ")
	if password != confirm {
		fmt.Println("Passwords do not match.")
		return
	}

	if _, err := a.auth.Register(username, password); err != nil {
		a.printErr(err)
		return
	}
	fmt.Println("Account created successfully! Please log in.")
}

func (a *app) showMenu() {
	items, err := a.menu.List()
	if err != nil {
		a.printErr(err)
		return
	}
	if len(items) == 0 {
		fmt.Println("The menu is empty right now.")
		return
	}

	category := ""
	for _, it := range items {
		if it.Category != category {
			category = it.Category
			fmt.Printf("\n-- %s --\n", category)
		}
		fmt.Printf("  [%d] %-24s %8s  %s\n", it.ID, it.Name, money(it.Price), it.Description)
	}
	fmt.Println()
}

func (a *app) handleAdd(args []string) {
	var selections []services.CartSelection
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("Usage: add <item-id> [qty]")
			return
		}
		qty := 1
		if len(args) > 1 {
			// Invalid or non-positive input falls back to 1.
			if n, err := strconv.Atoi(args[1]); err == nil {
				qty = n
			}
		}
		item, err := a.menu.Get(uint(id))
		if err != nil {
			fmt.Println("No such menu item.")
			return
		}
		selections = append(selections, services.CartSelection{Item: *item, Qty: qty})
	}

	if added := a.session.AddToCart(selections); added > 0 {
		fmt.Printf("Added %d item(s) to order.\n", added)
	} else {
		fmt.Println("Please select an item to add.")
	}
}

func (a *app) showCart() {
	lines := a.session.Cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your order is empty.")
		return
	}
	for _, l := range lines {
		fmt.Printf("  [%d] %-24s x%-3d %8s each  %8s\n",
			l.MenuItemID, l.Name, l.Qty, money(l.UnitPrice), money(l.UnitPrice*int64(l.Qty)))
	}
	fmt.Printf("Total: %s\n", money(a.session.Cart.Total()))
}

func (a *app) handleRemove(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: remove <item-id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("Usage: remove <item-id>")
		return
	}
	a.session.Cart.Remove(uint(id))
	a.showCart()
}

func (a *app) handleConfirm() {
	total := a.session.Cart.Total()
	orderID, err := a.orders.Confirm(a.session.UserID, a.session.Cart)
	if err != nil {
		a.printErr(err)
		return
	}
	// The engine never touches the cart; clearing it is this layer's job.
	a.session.Cart.Clear()
	fmt.Printf("Order #%d for %s has been confirmed!\n", orderID, money(total))
}

func (a *app) showHistory() {
	orders, err := a.orders.History(a.session.UserID, 20)
	if err != nil {
		a.printErr(err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("No past orders.")
		return
	}
	for _, o := range orders {
		fmt.Printf("  Order #%-5d %s  %s\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), money(o.Total))
	}
}

func (a *app) handleFeedback() {
	ratingStr := a.prompt("Rating (1-5): ")
	rating, err := strconv.Atoi(ratingStr)
	if err != nil {
		fmt.Println("Rating must be a number from 1 to 5.")
		return
	}
	comments := a.prompt("Comments: ")

	if err := a.feedback.Submit(a.session.UserID, rating, comments); err != nil {
		a.printErr(err)
		return
	}
	fmt.Println("Thank you! Your feedback has been submitted.")
}

// printErr shows validation problems verbatim and hides storage
// internals behind a generic message, logging the diagnostic.
func (a *app) printErr(err error) {
	if services.IsValidation(err) {
		fmt.Println(err)
		return
	}
	log.Printf("storage error: %v", err)
	fmt.Println("Something went wrong. Please try again.")
}

func money(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
