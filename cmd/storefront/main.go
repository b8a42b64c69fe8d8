package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/bukuloka/storefront/internal/auth"
	"github.com/bukuloka/storefront/internal/cart"
	"github.com/bukuloka/storefront/internal/catalog"
	"github.com/bukuloka/storefront/internal/checkout"
	"github.com/bukuloka/storefront/internal/genres"
	"github.com/bukuloka/storefront/internal/transactions"
	"github.com/bukuloka/storefront/pkg/api"
	"github.com/bukuloka/storefront/pkg/config"
	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
	"github.com/bukuloka/storefront/pkg/logger"
	"github.com/bukuloka/storefront/pkg/metrics"
	pkgpagination "github.com/bukuloka/storefront/pkg/pagination"
	"github.com/bukuloka/storefront/pkg/tokenstore"
	"github.com/bukuloka/storefront/pkg/types"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	_ = godotenv.Load()

	// Flags
	cmd := flag.String("cmd", "books", "command: books|book|genres|login|register|logout|profile|checkout|transactions|transaction")

	// Command-specific flags
	search := flag.String("search", "", "title search (for books)")
	condition := flag.String("condition", "", "condition filter: NEW|LIKE_NEW|GOOD|FAIR (for books)")
	genreID := flag.Int64("genre", 0, "genre id filter (for books)")
	sortBy := flag.String("sort", "", "sort field: title|publishDate (for books)")
	sortOrder := flag.String("order", "", "sort order: asc|desc (for books)")
	page := flag.Int("page", 1, "page number (for books and transactions)")
	limit := flag.Int("limit", 0, "page size (for books and transactions)")
	id := flag.Int64("id", 0, "resource id (for book and transaction)")
	email := flag.String("email", "", "account email (for login and register)")
	password := flag.String("password", "", "account password (for login and register)")
	username := flag.String("username", "", "account username (for register)")
	items := flag.String("items", "", "order lines as bookID:qty[,bookID:qty...] (for checkout)")

	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	sessionKey := cfg.Session.Key
	if sessionKey == "" {
		sessionKey = uuid.NewString()
	}
	ctx = logg.WithSessionID(ctx, sessionKey)
	ctx = logg.WithField(ctx, "cmd", *cmd)

	tokens, err := newTokenStore(ctx, cfg)
	requireResource(ctx, logg, "token store", err)

	// One client serves anonymous and authenticated calls; the token source
	// reads the live token, so requests before login simply go out bare.
	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		api.WithTokenSource(auth.NewStoreTokenSource(tokens, sessionKey)),
		api.WithMetrics(metrics.NewAPIClientMetrics(prometheus.DefaultRegisterer)),
	)
	requireResource(ctx, logg, "api client", err)

	authService, err := auth.NewService(client, tokens, sessionKey, logg)
	requireResource(ctx, logg, "auth service", err)

	catalogService, err := catalog.NewService(client, logg)
	requireResource(ctx, logg, "catalog service", err)

	genreService, err := genres.NewService(client)
	requireResource(ctx, logg, "genre service", err)

	txService, err := transactions.NewService(client)
	requireResource(ctx, logg, "transactions service", err)

	switch *cmd {
	case "books":
		result, err := catalogService.List(ctx, catalog.ListParams{
			Search:    *search,
			Condition: *condition,
			GenreID:   *genreID,
			SortBy:    *sortBy,
			SortOrder: *sortOrder,
			Params:    pkgpagination.Params{Page: *page, Limit: *limit},
		})
		exitOnUserError(err)
		for _, book := range result.Books {
			fmt.Printf("%d\t%s\t%s\t%s\tstock %d\n", book.ID, book.Title, book.Writer, types.FormatIDR(book.Price.Decimal()), book.Stock)
		}
		fmt.Printf("page %d of %d (%d books)\n", result.Meta.Page, result.Meta.TotalPages, result.Meta.Total)

	case "book":
		requireID(*id)
		book, err := catalogService.Get(ctx, *id)
		exitOnUserError(err)
		fmt.Printf("%s by %s\n%s, stock %d\n", book.Title, book.Writer, types.FormatIDR(book.Price.Decimal()), book.Stock)
		if book.Genre != nil {
			fmt.Println("genre:", book.Genre.Name)
		}

	case "genres":
		list, err := genreService.List(ctx)
		exitOnUserError(err)
		for _, genre := range list {
			fmt.Printf("%d\t%s\t%d books\n", genre.ID, genre.Name, genre.BookCount)
		}

	case "login":
		session, err := authService.Login(ctx, auth.LoginInput{Email: *email, Password: *password})
		exitOnUserError(err)
		if session.User != nil {
			fmt.Println("logged in as", session.User.Username)
		} else {
			fmt.Println("logged in")
		}
		printSessionKeyHint(cfg, sessionKey)

	case "register":
		user, err := authService.Register(ctx, auth.RegisterInput{
			Username: *username,
			Email:    *email,
			Password: *password,
		})
		exitOnUserError(err)
		fmt.Println("registered", user.Username)

	case "logout":
		err := authService.Logout(ctx)
		exitOnUserError(err)
		fmt.Println("logged out")

	case "profile":
		user, err := authService.Profile(ctx)
		exitOnUserError(err)
		fmt.Printf("%s <%s>\n", user.Username, user.Email)

	case "checkout":
		runCheckout(ctx, logg, catalogService, txService, *items)
		printSessionKeyHint(cfg, sessionKey)

	case "transactions":
		result, err := txService.List(ctx, pkgpagination.Params{Page: *page, Limit: *limit})
		exitOnUserError(err)
		for _, tx := range result.Transactions {
			fmt.Printf("%d\t%s\t%s\t%s\n", tx.ID, tx.Status, types.FormatIDR(tx.TotalPrice.Decimal()), tx.CreatedAt)
		}

	case "transaction":
		requireID(*id)
		tx, err := txService.Get(ctx, *id)
		exitOnUserError(err)
		fmt.Printf("transaction %d (%s), total %s\n", tx.ID, tx.Status, types.FormatIDR(tx.TotalPrice.Decimal()))
		for _, item := range tx.Items {
			title := fmt.Sprintf("book %d", item.BookID)
			if item.Book != nil {
				title = item.Book.Title
			}
			fmt.Printf("  %dx %s\n", item.Quantity, title)
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}

// runCheckout seeds a cart from the -items flag, prints the computed summary,
// and submits the order.
func runCheckout(ctx context.Context, logg *logger.Logger, catalogService *catalog.Service, txService *transactions.Service, items string) {
	snapshot, err := catalogService.Snapshot(ctx)
	exitOnUserError(err)

	composer, err := buildComposer(snapshot, items)
	exitOnUserError(err)

	summary := composer.Summary()
	for _, item := range summary.Items {
		if !item.Included() {
			continue
		}
		line := fmt.Sprintf("%dx %s = %s", item.Quantity, item.Book.Title, types.FormatIDR(item.Book.Price.Decimal().Mul(decimal.NewFromInt(int64(item.Quantity)))))
		if !item.WithinStock {
			line += fmt.Sprintf(" (only %d in stock)", item.Book.Stock)
		}
		fmt.Println(line)
	}
	fmt.Printf("total: %d books, %s\n", summary.TotalQuantity, types.FormatIDR(summary.TotalPrice))

	svc, err := checkout.NewService(composer, txService, logg)
	exitOnUserError(err)

	tx, err := svc.Submit(ctx)
	exitOnUserError(err)
	fmt.Println("order created, transaction", tx.ID)
}

// buildComposer parses "bookID:qty,bookID:qty" into a seeded cart.
func buildComposer(snapshot *cart.Catalog, items string) (*cart.Composer, error) {
	c := cart.New()
	for _, entry := range strings.Split(items, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idPart, qtyPart, found := strings.Cut(entry, ":")
		if !found {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid item %q, want bookID:qty", entry))
		}
		bookID, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid book id in %q", entry))
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid quantity in %q", entry))
		}
		c.AddItem()
		c.UpdateItem(c.Len()-1, cart.Patch{BookID: &bookID, Quantity: &quantity})
	}
	return cart.NewComposer(c, snapshot), nil
}

func newTokenStore(ctx context.Context, cfg *config.Config) (tokenstore.Store, error) {
	if cfg.Redis.Enabled() {
		return tokenstore.NewRedisStore(ctx, cfg.Redis, cfg.Session.TokenTTL)
	}
	return tokenstore.NewMemoryStore(), nil
}

func printSessionKeyHint(cfg *config.Config, sessionKey string) {
	if cfg.Session.Key == "" && cfg.Redis.Enabled() {
		fmt.Println("session key:", sessionKey, "(set BUKULOKA_SESSION_KEY to reuse it)")
	}
}

func requireID(id int64) {
	if id == 0 {
		fmt.Fprintln(os.Stderr, "missing -id")
		os.Exit(1)
	}
}

func exitOnUserError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, pkgerrors.UserMessage(err))
	os.Exit(1)
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
