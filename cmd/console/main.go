package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/deepbookgo/deepbook-client-go/client"
	"github.com/deepbookgo/deepbook-client-go/cmd/console/config"
	dbconfig "github.com/deepbookgo/deepbook-client-go/config"
	"github.com/deepbookgo/deepbook-client-go/contracts/pool"
)

// --- VISUAL CONSTANTS ---
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[37m"

	CommandTimeout = 30 * time.Second
)

// header prints a styled section header
func header(title string) {
	fmt.Println("\n" + Bold + Cyan + ":: " + title + " ::" + Reset)
}

func main() {
	// --- 1. SETUP LOGGING (To File) ---
	logFile, err := os.OpenFile("console.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("Failed to open log file: %v", err))
	}
	defer logFile.Close()

	rootLogHandler := slog.NewJSONHandler(logFile, nil)
	rootLogger := slog.New(rootLogHandler)

	closeApp := func() {
		fmt.Println("\n" + Red + "Fatal error occurred. Check console.log for details." + Reset)
		os.Exit(1)
	}

	// --- 2. CONFIG & CONTEXT ---
	cfg, err := loadConfig()
	if err != nil {
		rootLogger.Error("Failed to load configuration", "error", err)
		closeApp()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- 3. INITIALIZE CLIENT ---
	managers := dbconfig.BalanceManagerMap{}
	for key, m := range cfg.BalanceManagers {
		managers[key] = dbconfig.BalanceManager{Address: m.Address, TradeCap: m.TradeCap}
	}

	db, err := client.New(client.Config{
		Env:        cfg.Env,
		RPCURL:     cfg.RPCURL,
		Address:    cfg.Address,
		Options:    &dbconfig.Options{BalanceManagers: managers},
		Logger:     rootLogger.With("component", "deepbook-client"),
		Registerer: prometheus.DefaultRegisterer,
	})
	if err != nil {
		rootLogger.Error("Failed to initialize DeepBook client", "env", cfg.Env, "error", err)
		closeApp()
	}

	// --- 4. START CONSOLE ---
	fmt.Println(Green + "Starting DeepBook Console..." + Reset)
	fmt.Println("Logs are being written to 'console.log'")
	runConsole(ctx, db)

	fmt.Println("\n" + Yellow + "Shutting down..." + Reset)
}

// runConsole handles user input and display.
func runConsole(ctx context.Context, db *client.DeepBookClient) {
	reader := bufio.NewReader(os.Stdin)
	time.Sleep(500 * time.Millisecond)

	for {
		if ctx.Err() != nil {
			return
		}

		printMenu()

		fmt.Print(Bold + "Enter selection: " + Reset)
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}
		input = strings.TrimSpace(input)

		if input == "q" {
			return
		}
		handleCommand(ctx, input, db, reader)

		fmt.Println("\n" + Gray + "[Press Enter to continue]" + Reset)
		reader.ReadString('\n')
	}
}

func printMenu() {
	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(Bold + "DEEPBOOK CONSOLE" + Reset + Gray + " | v0.1.0" + Reset)
	fmt.Println(Gray + "-----------------------------------" + Reset)
	fmt.Printf(" %s1.%s Mid Price        %s(by Pool Key)%s\n", Cyan, Reset, Gray, Reset)
	fmt.Printf(" %s2.%s Whitelist Check  %s(by Pool Key)%s\n", Cyan, Reset, Gray, Reset)
	fmt.Printf(" %s3.%s Manager Balance  %s(by Manager/Coin Key)%s\n", Cyan, Reset, Gray, Reset)
	fmt.Printf(" %s4.%s Open Orders      %s(by Pool/Manager Key)%s\n", Cyan, Reset, Gray, Reset)
	fmt.Printf(" %s5.%s Dry-Run Limit Order\n", Cyan, Reset)
	fmt.Println(Gray + "-----------------------------------" + Reset)
	fmt.Printf(" %sh.%s Help / Architecture\n", Yellow, Reset)
	fmt.Printf(" %sq.%s Quit\n", Red, Reset)
	fmt.Println("")
}

func handleCommand(ctx context.Context, input string, db *client.DeepBookClient, reader *bufio.Reader) {
	switch input {
	case "1":
		midPrice(ctx, db, reader)
	case "2":
		whitelistCheck(ctx, db, reader)
	case "3":
		managerBalance(ctx, db, reader)
	case "4":
		openOrders(ctx, db, reader)
	case "5":
		dryRunLimitOrder(ctx, db, reader)
	case "h":
		printHelp()
	default:
		fmt.Println(Red + "Unknown command." + Reset)
	}
}

// --- COMMAND HANDLERS ---

func printHelp() {
	fmt.Print("\033[H\033[2J")

	header("DEEPBOOK CLIENT ARCHITECTURE")
	fmt.Println(Bold + "Concept: Transaction Composition" + Reset)
	fmt.Println("The client builds programmable transaction blocks for the DeepBook V3")
	fmt.Println("order book without ever holding a signing key.")
	fmt.Println("")

	fmt.Println(Bold + "1. THE INTENT" + Reset)
	fmt.Println("   An " + Cyan + "intent.Builder" + Reset + " is an append-only buffer of Move calls.")
	fmt.Println("   Contract composers (" + Yellow + "Pool" + Reset + ", " + Yellow + "BalanceManager" + Reset + ", " + Yellow + "Governance" + Reset + ", " + Yellow + "FlashLoan" + Reset + ")")
	fmt.Println("   append operations; the first failure poisons the whole intent.")
	fmt.Println("")

	fmt.Println(Bold + "2. RESOLUTION" + Reset)
	fmt.Println("   Object ids from the registry are resolved against the ledger into")
	fmt.Println("   shared or owned call arguments, with per-use mutability.")
	fmt.Println("")

	fmt.Println(Bold + "3. EXECUTION" + Reset)
	fmt.Println("   Finished intents are dry-run via the node's inspection endpoint.")
	fmt.Println("   Reads decode their BCS return values into typed Go results; writes")
	fmt.Println("   can be checked here and signed elsewhere.")
	fmt.Println("")

	fmt.Println(Gray + "---------------------------------------------------------------" + Reset)
	fmt.Println(Bold + "PURPOSE OF THIS CONSOLE" + Reset)
	fmt.Println("Use these commands as examples for composing your own order flow")
	fmt.Println("on top of the client library.")
	fmt.Println(Gray + "---------------------------------------------------------------" + Reset)
}

func midPrice(ctx context.Context, db *client.DeepBookClient, reader *bufio.Reader) {
	poolKey := prompt(reader, "[Mid Price] Enter pool key (e.g. DEEP_SUI): ")
	if poolKey == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	price, err := db.MidPrice(ctx, poolKey)
	if err != nil {
		fmt.Printf(Red+"[ERROR] %v%s\n", err, Reset)
		return
	}
	fmt.Printf("\n%sMID PRICE ::%s %s = %s%s%s\n", Green, Reset, poolKey, Bold, price, Reset)
}

func whitelistCheck(ctx context.Context, db *client.DeepBookClient, reader *bufio.Reader) {
	poolKey := prompt(reader, "[Whitelist] Enter pool key: ")
	if poolKey == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	ok, err := db.IsWhitelisted(ctx, poolKey)
	if err != nil {
		fmt.Printf(Red+"[ERROR] %v%s\n", err, Reset)
		return
	}
	status := Red + "NOT WHITELISTED" + Reset
	if ok {
		status = Green + "WHITELISTED" + Reset
	}
	fmt.Printf("\n%s: %s\n", poolKey, status)
}

func managerBalance(ctx context.Context, db *client.DeepBookClient, reader *bufio.Reader) {
	managerKey := prompt(reader, "[Balance] Enter manager key (e.g. MANAGER_1): ")
	coinKey := prompt(reader, "[Balance] Enter coin key (e.g. SUI): ")
	if managerKey == "" || coinKey == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	coinType, balance, err := db.CheckManagerBalance(ctx, managerKey, coinKey)
	if err != nil {
		fmt.Printf(Red+"[ERROR] %v%s\n", err, Reset)
		return
	}

	header("MANAGER BALANCE")
	fmt.Printf("Manager:   %s\n", managerKey)
	fmt.Printf("Coin Type: %s%s%s\n", Cyan, coinType, Reset)
	fmt.Printf("Balance:   %s%s%s\n", Bold, balance, Reset)
}

func openOrders(ctx context.Context, db *client.DeepBookClient, reader *bufio.Reader) {
	poolKey := prompt(reader, "[Open Orders] Enter pool key: ")
	managerKey := prompt(reader, "[Open Orders] Enter manager key: ")
	if poolKey == "" || managerKey == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	ids, err := db.AccountOpenOrders(ctx, poolKey, managerKey)
	if err != nil {
		fmt.Printf(Red+"[ERROR] %v%s\n", err, Reset)
		return
	}
	if len(ids) == 0 {
		fmt.Println(Yellow + "[INFO] No open orders for this manager." + Reset)
		return
	}

	header(fmt.Sprintf("OPEN ORDERS IN %s", poolKey))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintln(w, "#\tORDER ID\t")
	fmt.Fprintln(w, "-\t--------\t")
	for i, id := range ids {
		fmt.Fprintf(w, "%d\t%s\t\n", i+1, id.String())
	}
	w.Flush()
}

func dryRunLimitOrder(ctx context.Context, db *client.DeepBookClient, reader *bufio.Reader) {
	poolKey := prompt(reader, "[Limit Order] Enter pool key: ")
	managerKey := prompt(reader, "[Limit Order] Enter manager key: ")
	priceStr := prompt(reader, "[Limit Order] Enter price: ")
	qtyStr := prompt(reader, "[Limit Order] Enter quantity: ")
	side := prompt(reader, "[Limit Order] Side (b=bid, a=ask): ")
	if poolKey == "" || managerKey == "" || priceStr == "" || qtyStr == "" {
		return
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		fmt.Printf(Red+"[ERROR] Invalid price: %v%s\n", err, Reset)
		return
	}
	qty, err := decimal.NewFromString(qtyStr)
	if err != nil {
		fmt.Printf(Red+"[ERROR] Invalid quantity: %v%s\n", err, Reset)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	b := db.NewIntent()
	db.Pool.PlaceLimitOrder(ctx, b, poolKey, managerKey, pool.LimitOrderParams{
		ClientOrderId: fmt.Sprintf("%d", time.Now().UnixMilli()),
		Price:         price,
		Quantity:      qty,
		IsBid:         side == "b",
	})

	if err := db.Executor().RunCheck(ctx, b); err != nil {
		fmt.Printf(Red+"[DRY RUN FAILED] %v%s\n", err, Reset)
		return
	}

	header("DRY RUN OK")
	fmt.Printf("Pool:     %s\n", poolKey)
	fmt.Printf("Manager:  %s\n", managerKey)
	fmt.Printf("Side:     %s\n", map[bool]string{true: "BID", false: "ASK"}[side == "b"])
	fmt.Printf("Price:    %s\n", price)
	fmt.Printf("Quantity: %s\n", qty)
	fmt.Println(Green + "The composed transaction executed cleanly against the node." + Reset)
}

// --- HELPERS ---

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print("\n" + Bold + label + Reset)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func loadConfig() (*config.ConsoleConfig, error) {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file.")
	flag.Parse()
	log.Printf("Loading configuration from: %s", *configPath)
	return config.LoadConfig(*configPath)
}
