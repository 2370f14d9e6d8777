// Command storefront is an interactive terminal client for the parastore
// backend: browse the catalog, manage the cart, check out.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Tahancr42/parastore-frontend/internal/api"
	"github.com/Tahancr42/parastore-frontend/internal/cart"
	"github.com/Tahancr42/parastore-frontend/internal/config"
	"github.com/Tahancr42/parastore-frontend/internal/domain"
	"github.com/Tahancr42/parastore-frontend/internal/notify"
	"github.com/Tahancr42/parastore-frontend/internal/session"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	// The client needs the session's token and the session logs in through
	// the client; the function indirection breaks the cycle.
	var client *api.Client
	sess := session.NewManager(session.AuthenticatorFunc(
		func(ctx context.Context, email, password string) (*domain.Credentials, error) {
			return client.Login(ctx, email, password)
		}))
	client = api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, api.WithToken(sess.Token))

	notifier := &notify.Writer{Out: os.Stdout}
	store := cart.NewStore(client, sess, notifier)
	sess.OnChange(store.HandleIdentityChange)

	reader := bufio.NewScanner(os.Stdin)
	confirm := cart.ConfirmerFunc(func(prompt string) bool {
		fmt.Printf("%s [o/N] ", prompt)
		if !reader.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(reader.Text()))
		return answer == "o" || answer == "oui" || answer == "y" || answer == "yes"
	})

	ops := cart.NewOperations(client, client, store, sess, notifier, confirm)
	catalog := api.NewCatalog(client)

	fmt.Println("parastore — tapez 'help' pour la liste des commandes")
	for {
		fmt.Print("> ")
		if !reader.Scan() {
			break
		}
		line := strings.Fields(strings.TrimSpace(reader.Text()))
		if len(line) == 0 {
			continue
		}
		ctx := context.Background()

		switch line[0] {
		case "help":
			printHelp()
		case "login":
			if len(line) < 3 {
				fmt.Println("usage: login <email> <motdepasse>")
				continue
			}
			identity, err := sess.Login(ctx, line[1], line[2])
			if err != nil {
				notifier.Error("Échec de la connexion !")
				continue
			}
			notifier.Success(fmt.Sprintf("Connexion réussie ! (%s)", identity.Role))
		case "logout":
			sess.Logout()
			notifier.Info("Déconnexion effectuée.")
		case "products":
			products, err := catalog.Products(ctx)
			if err != nil {
				notifier.Error("Erreur lors du chargement des produits")
				continue
			}
			for _, p := range products {
				fmt.Printf("%3d  %-45s %8.2f MAD\n", p.ID, p.Name, p.Price)
			}
		case "cart":
			items := store.Items()
			if len(items) == 0 {
				fmt.Println("Votre panier est vide")
				continue
			}
			for _, item := range items {
				fmt.Printf("#%d  %-45s %d × %.2f = %8.2f MAD\n",
					item.ID, item.ProductName, item.Quantity, item.UnitPrice, item.LineTotal)
			}
			fmt.Printf("Total: %d article(s), %.2f MAD\n", store.TotalItems(), store.TotalPrice())
		case "add":
			productID, quantity, ok := parseIDAndQty(line, 1)
			if !ok {
				fmt.Println("usage: add <produit> [quantité]")
				continue
			}
			ops.AddToCart(ctx, productID, quantity)
		case "qty":
			if len(line) < 3 {
				fmt.Println("usage: qty <ligne> <quantité>")
				continue
			}
			itemID, quantity, ok := parseIDAndQty(line, 0)
			if !ok {
				fmt.Println("usage: qty <ligne> <quantité>")
				continue
			}
			ops.UpdateQuantity(ctx, itemID, quantity)
		case "rm":
			if len(line) < 2 {
				fmt.Println("usage: rm <ligne>")
				continue
			}
			itemID, err := strconv.ParseInt(line[1], 10, 64)
			if err != nil {
				fmt.Println("usage: rm <ligne>")
				continue
			}
			ops.RemoveItem(ctx, itemID)
		case "clear":
			ops.ClearCart(ctx, true)
		case "checkout":
			if order, ok := ops.Checkout(ctx); ok {
				fmt.Printf("Commande n°%d — %.2f MAD (%s)\n", order.ID, order.Total, order.Status)
			}
		case "orders":
			identity := sess.Current()
			if identity == nil {
				notifier.Error("Utilisateur non connecté")
				continue
			}
			orders, err := client.OrdersByUser(ctx, identity.UserID)
			if err != nil {
				notifier.Error("Erreur lors du chargement des commandes")
				continue
			}
			for _, o := range orders {
				fmt.Printf("n°%d  %-10s %8.2f MAD  %s\n", o.ID, o.Status, o.Total, o.CreatedAt.Format("02/01/2006 15:04"))
			}
		case "quit", "exit":
			return
		default:
			fmt.Printf("commande inconnue: %s\n", line[0])
		}
	}
}

func parseIDAndQty(line []string, defaultQty int) (int64, int, bool) {
	if len(line) < 2 {
		return 0, 0, false
	}
	id, err := strconv.ParseInt(line[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	quantity := defaultQty
	if len(line) >= 3 {
		quantity, err = strconv.Atoi(line[2])
		if err != nil {
			return 0, 0, false
		}
	}
	return id, quantity, true
}

func printHelp() {
	fmt.Println(`commandes:
  login <email> <motdepasse>   se connecter
  logout                       se déconnecter
  products                     afficher le catalogue
  cart                         afficher le panier
  add <produit> [quantité]     ajouter au panier
  qty <ligne> <quantité>       modifier la quantité d'une ligne
  rm <ligne>                   retirer une ligne
  clear                        vider le panier (avec confirmation)
  checkout                     créer la commande et vider le panier
  orders                       mes commandes
  quit                         quitter`)
}
