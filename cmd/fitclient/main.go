package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/config"
	"fitcoach/client/internal/guard"
	"fitcoach/client/internal/session"
	"fitcoach/client/internal/state"
)

var (
	version   string
	buildDate string
)

// consoleNotifier prints mutation outcomes the way the web client toasts them.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Println("✔", msg) }
func (consoleNotifier) Error(msg string)   { fmt.Println("✘", msg) }

// app bundles the wired client pieces the shell commands operate on.
type app struct {
	session   *session.Manager
	client    *api.Client
	plans     *state.PlanController
	menu      *state.MenuController
	profile   *state.Profile
	directory *state.Directory
	catalog   *state.Catalog
}

// commandZone classifies each shell command into the navigation zone it
// belongs to, so the role guard can gate it exactly like a route subtree.
var commandZone = map[string]guard.Zone{
	"login":    guard.ZonePublic,
	"register": guard.ZonePublic,

	"whoami":    guard.ZoneUser,
	"profile":   guard.ZoneUser,
	"measure":   guard.ZoneUser,
	"plans":     guard.ZoneUser,
	"plan":      guard.ZoneUser,
	"plan-done": guard.ZoneUser,
	"weight":    guard.ZoneUser,
	"menu":      guard.ZoneUser,
	"meal-done": guard.ZoneUser,
	"health":    guard.ZoneUser,

	"users":       guard.ZoneAdmin,
	"user":        guard.ZoneAdmin,
	"del-user":    guard.ZoneAdmin,
	"plan-create": guard.ZoneAdmin,
	"plan-load":   guard.ZoneAdmin,
	"plan-del":    guard.ZoneAdmin,
	"detail-add":  guard.ZoneAdmin,
	"detail-upd":  guard.ZoneAdmin,
	"detail-del":  guard.ZoneAdmin,
	"menu-create": guard.ZoneAdmin,
	"menu-load":   guard.ZoneAdmin,
	"menu-del":    guard.ZoneAdmin,
	"meal-add":    guard.ZoneAdmin,
	"meal-upd":    guard.ZoneAdmin,
	"meal-del":    guard.ZoneAdmin,
	"exercises":   guard.ZoneAdmin,
	"ex-add":      guard.ZoneAdmin,
	"ex-del":      guard.ZoneAdmin,
	"health-view": guard.ZoneAdmin,
	"health-del":  guard.ZoneAdmin,
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg.Log.Debug)
	defer logger.Sync()

	store, err := session.NewKeyStore(cfg.Storage.Dir)
	if err != nil {
		log.Fatalf("could not open state dir: %v", err)
	}

	// The manager owns the token; the API client reads it per request.
	var mgr *session.Manager
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, func() string {
		if mgr == nil {
			return ""
		}
		return mgr.Token()
	}, logger)
	mgr = session.NewManager(client, store, logger)

	ctx := context.Background()
	if err := mgr.Rehydrate(ctx); err != nil {
		logger.Warn("rehydration failed", zap.Error(err))
	}

	notify := consoleNotifier{}
	a := &app{
		session:   mgr,
		client:    client,
		plans:     state.NewPlanController(client, mgr, notify),
		menu:      state.NewMenuController(client, mgr, notify),
		profile:   state.NewProfile(client, mgr, notify),
		directory: state.NewDirectory(client, notify),
		catalog:   state.NewCatalog(client, notify),
	}

	if v := version; v != "" {
		fmt.Printf("fitclient %s (%s)\n", v, buildDate)
	}
	fmt.Printf("Signed in as: %s. Type 'help' for commands.\n", mgr.State())
	repl(ctx, a)
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

// repl runs the interactive shell loop. Every command is resolved through the
// role guard first; a denied command redirects to the home zone of the current
// session state, exactly like the route guard it mirrors.
func repl(ctx context.Context, a *app) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("fitcoach> ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(args) == 0 {
			continue
		}
		cmd := args[0]
		switch cmd {
		case "exit", "quit":
			return
		case "help":
			printHelp()
			continue
		case "logout":
			a.session.Logout()
			fmt.Println("Logged out.")
			continue
		case "theme":
			if len(args) == 2 {
				if err := a.session.SetTheme(args[1]); err != nil {
					fmt.Println("✘ could not save theme:", err)
				}
			} else {
				fmt.Println("theme:", a.session.Theme())
			}
			continue
		}

		zone, known := commandZone[cmd]
		if !known {
			fmt.Println("Unknown command. Type 'help'.")
			continue
		}
		if decision := guard.Resolve(a.session.State(), zone); !decision.Allowed {
			fmt.Printf("Not available here: you are in the %s area.\n", decision.Redirect)
			continue
		}
		runCommand(ctx, a, cmd, args[1:], bufio.NewReader(os.Stdin))
	}
}

func runCommand(ctx context.Context, a *app, cmd string, args []string, in *bufio.Reader) {
	switch cmd {
	case "login":
		if len(args) != 2 {
			fmt.Println("usage: login <email> <password>")
			return
		}
		if err := a.session.Login(ctx, args[0], args[1]); err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
			return
		}
		fmt.Println("✔ Login Successful")
		if a.session.IsAdmin() {
			// The directory is loaded once per admin session.
			_ = a.directory.Load(ctx, false)
		}

	case "register":
		registerInteractive(ctx, a, in)

	case "whoami":
		claims := a.session.Claims()
		identity := a.session.Identity()
		fmt.Printf("subject=%s role=%s email=%s\n", claims.NameID, claims.Role, claims.Email)
		if identity != nil {
			fmt.Printf("%s %s, %d plans, menu assigned: %v\n",
				identity.FirstName, identity.LastName, len(identity.Plans), identity.Menu != nil)
		}

	case "profile":
		identity := a.session.Identity()
		if identity == nil {
			return
		}
		fmt.Printf("%s %s (%s), age %d, %s\n", identity.FirstName, identity.LastName,
			identity.Email, identity.Age, identity.City)
		fmt.Printf("goal: %s, height: %.1f, current weight: %.1f kg\n",
			identity.Goal, identity.Height, identity.CurrentWeight())

	case "measure":
		measureInteractive(ctx, a, in)

	case "plans":
		identity := a.session.Identity()
		if identity == nil {
			return
		}
		for _, plan := range identity.Plans {
			fmt.Printf("[%d] %s completed=%v exercises=%d\n",
				plan.ID, plan.Name, plan.IsCompleted, len(plan.PlanDetails))
		}

	case "plan":
		planID, ok := parseID(args, "usage: plan <planId>")
		if !ok {
			return
		}
		identity := a.session.Identity()
		if identity == nil {
			return
		}
		for i := range identity.Plans {
			if identity.Plans[i].ID == planID {
				plan := identity.Plans[i]
				a.plans.SetPlan(&plan)
				printPlan(a.plans)
				return
			}
		}
		fmt.Println("✘ Plan was not found")

	case "plan-done":
		if len(args) != 1 {
			fmt.Println("usage: plan-done <true|false>")
			return
		}
		done, _ := strconv.ParseBool(args[0])
		_ = a.plans.ToggleCompleted(ctx, done)

	case "weight":
		if len(args) != 2 {
			fmt.Println("usage: weight <detailId> <kg>")
			return
		}
		detailID, err1 := strconv.ParseInt(args[0], 10, 64)
		kg, err2 := strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil {
			fmt.Println("usage: weight <detailId> <kg>")
			return
		}
		if err := a.plans.UpdateWeight(ctx, detailID, kg); err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
		}

	case "menu":
		identity := a.session.Identity()
		if identity == nil || identity.Menu == nil {
			fmt.Println("No menu assigned yet.")
			return
		}
		a.menu.SetMenu(identity.Menu)
		printMenu(a.menu)

	case "meal-done":
		if len(args) != 2 {
			fmt.Println("usage: meal-done <mealId> <true|false>")
			return
		}
		mealID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Println("usage: meal-done <mealId> <true|false>")
			return
		}
		done, _ := strconv.ParseBool(args[1])
		_ = a.menu.ToggleMealCompleted(ctx, mealID, done)

	case "health":
		healthInteractive(ctx, a, in)

	case "users":
		if err := a.directory.Load(ctx, false); err != nil {
			return
		}
		for _, entry := range a.directory.Entries() {
			fmt.Printf("[%d] %s %s, %d, %s declared=%v\n", entry.ID,
				entry.FirstName, entry.LastName, entry.Age, entry.City,
				entry.HealthDeclarationID != nil)
		}

	case "user":
		id, ok := parseID(args, "usage: user <id>")
		if !ok {
			return
		}
		user, err := a.client.GetUser(ctx, id)
		if err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
			return
		}
		fmt.Printf("%s %s (%s), plans=%d, menu=%v\n", user.FirstName, user.LastName,
			user.Email, len(user.Plans), user.Menu != nil)

	case "del-user":
		id, ok := parseID(args, "usage: del-user <id>")
		if !ok {
			return
		}
		_ = a.directory.DeleteTrainee(ctx, id)

	case "plan-create":
		if len(args) != 2 {
			fmt.Println("usage: plan-create <userId> <name>")
			return
		}
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Println("usage: plan-create <userId> <name>")
			return
		}
		user, err := a.client.GetUser(ctx, userID)
		if err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
			return
		}
		if _, err := a.plans.Create(ctx, userID, args[1], user.Plans); err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
			return
		}
		fmt.Println("✔ Plan created")

	case "plan-load":
		planID, ok := parseID(args, "usage: plan-load <planId>")
		if !ok {
			return
		}
		if err := a.plans.Load(ctx, planID); err == nil {
			printPlan(a.plans)
		}

	case "plan-del":
		_ = a.plans.Delete(ctx)

	case "detail-add":
		if len(args) != 4 {
			fmt.Println("usage: detail-add <exercise> <order> <reps> <sets>")
			return
		}
		order, _ := strconv.Atoi(args[1])
		reps, _ := strconv.Atoi(args[2])
		sets, _ := strconv.Atoi(args[3])
		if len(a.catalog.Exercises()) == 0 {
			_ = a.catalog.Load(ctx)
		}
		if err := a.plans.AddDetail(ctx, args[0], order, reps, sets, a.catalog.Exercises()); err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
		}

	case "detail-upd":
		if len(args) != 4 {
			fmt.Println("usage: detail-upd <detailId> <order> <reps> <sets>")
			return
		}
		detailID, _ := strconv.ParseInt(args[0], 10, 64)
		order, _ := strconv.Atoi(args[1])
		reps, _ := strconv.Atoi(args[2])
		sets, _ := strconv.Atoi(args[3])
		if err := a.plans.UpdateDetail(ctx, detailID, order, reps, sets); err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
		}

	case "detail-del":
		detailID, ok := parseID(args, "usage: detail-del <detailId>")
		if !ok {
			return
		}
		_ = a.plans.RemoveDetail(ctx, detailID)

	case "menu-create":
		userID, ok := parseID(args, "usage: menu-create <userId>")
		if !ok {
			return
		}
		_ = a.menu.Create(ctx, userID)

	case "menu-load":
		userID, ok := parseID(args, "usage: menu-load <userId>")
		if !ok {
			return
		}
		if err := a.menu.Load(ctx, userID); err == nil {
			printMenu(a.menu)
		}

	case "menu-del":
		_ = a.menu.Delete(ctx)

	case "meal-add":
		if len(args) != 5 {
			fmt.Println("usage: meal-add <name> <order> <protein> <carbs> <fats>")
			return
		}
		order, _ := strconv.Atoi(args[1])
		protein, _ := strconv.Atoi(args[2])
		carbs, _ := strconv.Atoi(args[3])
		fats, _ := strconv.Atoi(args[4])
		if err := a.menu.AddMeal(ctx, args[0], order, protein, carbs, fats); err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
		}

	case "meal-upd":
		if len(args) != 4 {
			fmt.Println("usage: meal-upd <mealId> <protein> <carbs> <fats>")
			return
		}
		mealID, _ := strconv.ParseInt(args[0], 10, 64)
		protein, _ := strconv.Atoi(args[1])
		carbs, _ := strconv.Atoi(args[2])
		fats, _ := strconv.Atoi(args[3])
		_ = a.menu.UpdateMealPoints(ctx, mealID, protein, carbs, fats)

	case "meal-del":
		mealID, ok := parseID(args, "usage: meal-del <mealId>")
		if !ok {
			return
		}
		_ = a.menu.RemoveMeal(ctx, mealID)

	case "exercises":
		if err := a.catalog.Load(ctx); err != nil {
			return
		}
		for _, exercise := range a.catalog.Exercises() {
			fmt.Printf("[%d] %s (%s)\n", exercise.ID, exercise.Name, exercise.MuscleGroupName)
		}

	case "ex-add":
		if len(args) < 2 || len(args) > 3 {
			fmt.Println("usage: ex-add <name> <muscleGroup> [videoPath]")
			return
		}
		videoPath := ""
		if len(args) == 3 {
			videoPath = args[2]
		}
		if err := a.catalog.Create(ctx, args[0], args[1], videoPath); err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
		}

	case "ex-del":
		exerciseID, ok := parseID(args, "usage: ex-del <exerciseId>")
		if !ok {
			return
		}
		_ = a.catalog.Remove(ctx, exerciseID)

	case "health-view":
		userID, ok := parseID(args, "usage: health-view <userId>")
		if !ok {
			return
		}
		decl, err := a.client.GetHealthDeclarationByUser(ctx, userID)
		if err != nil {
			fmt.Println("✘", state.ErrorMessage(err))
			return
		}
		fmt.Printf("declaration #%d: heart disease=%v, chronic illness=%v, trains under supervision=%v\n",
			decl.ID, decl.HeartDisease, decl.ChronicIllness, decl.TrainUnderSupervision)

	case "health-del":
		userID, ok := parseID(args, "usage: health-del <userId>")
		if !ok {
			return
		}
		entry, found := a.directory.Find(userID)
		if !found || entry.HealthDeclarationID == nil {
			fmt.Println("✘ No declaration on record for that trainee")
			return
		}
		_ = a.directory.ClearHealthDeclaration(ctx, userID, *entry.HealthDeclarationID)
	}
}

func parseID(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		fmt.Println(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println(usage)
		return 0, false
	}
	return id, true
}

func printPlan(c *state.PlanController) {
	plan := c.Plan()
	if plan == nil {
		return
	}
	fmt.Printf("%s (completed=%v)\n", plan.Name, plan.IsCompleted)
	for _, detail := range plan.PlanDetails {
		fmt.Printf("  %d. [%d] %s %dx%d, current %.1f kg (prev %.1f)\n",
			detail.OrderInPlan, detail.ID, detail.ExerciseName,
			detail.Sets, detail.Reps, detail.CurrentWeight, detail.PreviousWeight)
	}
}

func printMenu(c *state.MenuController) {
	menu := c.Menu()
	if menu == nil {
		return
	}
	for _, meal := range menu.Meals {
		check := " "
		if meal.IsCompleted {
			check = "x"
		}
		fmt.Printf("  [%s] %d. (%d) %s P:%d C:%d F:%d\n", check, meal.Order, meal.ID,
			meal.Name, meal.ProteinPoints, meal.CarbsPoints, meal.FatsPoints)
	}
}

func registerInteractive(ctx context.Context, a *app, in *bufio.Reader) {
	req := api.RegisterRequest{}
	req.FirstName = prompt(in, "first name")
	req.LastName = prompt(in, "last name")
	req.Email = prompt(in, "email")
	req.Password = prompt(in, "password")
	req.PhoneNumber = prompt(in, "phone")
	req.Age, _ = strconv.Atoi(prompt(in, "age"))
	req.Gender = prompt(in, "gender")
	req.City = prompt(in, "city")
	req.Goal = prompt(in, "goal")
	req.Height, _ = strconv.ParseFloat(prompt(in, "height (cm)"), 64)
	req.Weight, _ = strconv.ParseFloat(prompt(in, "weight (kg)"), 64)
	req.AgreedToTerms = promptBool(in, "agree to terms?")
	if !req.AgreedToTerms {
		fmt.Println("✘ You must agree to the terms to register")
		return
	}
	if err := a.client.Register(ctx, req); err != nil {
		fmt.Println("✘", state.ErrorMessage(err))
		return
	}
	fmt.Println("✔ Registration Successful, you can log in now")
}

func measureInteractive(ctx context.Context, a *app, in *bufio.Reader) {
	identity := a.session.Identity()
	if identity == nil {
		return
	}
	req := api.UpdateProfileRequest{
		City:   identity.City,
		Age:    identity.Age,
		Goal:   identity.Goal,
		Height: identity.Height,
	}
	req.Weight, _ = strconv.ParseFloat(prompt(in, "weight (kg)"), 64)
	req.NeckCircumference, _ = strconv.ParseFloat(prompt(in, "neck (cm)"), 64)
	req.PecsCircumference, _ = strconv.ParseFloat(prompt(in, "pecs (cm)"), 64)
	req.ArmCircumference, _ = strconv.ParseFloat(prompt(in, "arm (cm)"), 64)
	req.WaistCircumference, _ = strconv.ParseFloat(prompt(in, "waist (cm)"), 64)
	req.AbdominalCircumference, _ = strconv.ParseFloat(prompt(in, "abdomen (cm)"), 64)
	req.ThighsCircumference, _ = strconv.ParseFloat(prompt(in, "thighs (cm)"), 64)
	req.HipsCircumference, _ = strconv.ParseFloat(prompt(in, "hips (cm)"), 64)
	_ = a.profile.Update(ctx, req)
}

func healthInteractive(ctx context.Context, a *app, in *bufio.Reader) {
	req := api.CreateHealthDeclarationRequest{
		HeartDisease:            promptBool(in, "diagnosed heart disease?"),
		ChestPainInRest:         promptBool(in, "chest pain at rest?"),
		ChestPainInDaily:        promptBool(in, "chest pain in daily activity?"),
		ChestPainInActivity:     promptBool(in, "chest pain during exercise?"),
		Dizzy:                   promptBool(in, "dizziness?"),
		LostConsciousness:       promptBool(in, "ever lost consciousness?"),
		AsthmaTreatment:         promptBool(in, "treated for asthma?"),
		ShortBreath:             promptBool(in, "shortness of breath?"),
		FamilyDeathHeartDisease: promptBool(in, "family death from heart disease?"),
		FamilySuddenEarlyDeath:  promptBool(in, "sudden early-age death in family?"),
		TrainUnderSupervision:   promptBool(in, "advised to train under supervision?"),
		ChronicIllness:          promptBool(in, "chronic illness?"),
		IsPregnant:              promptBool(in, "pregnant?"),
	}
	_ = a.profile.SubmitHealthDeclaration(ctx, req)
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptBool(in *bufio.Reader, label string) bool {
	answer := strings.ToLower(prompt(in, label+" [y/N]"))
	return answer == "y" || answer == "yes"
}

func printHelp() {
	fmt.Println(`Public:   login <email> <password> | register | theme [light|dark]
Trainee:  whoami | profile | measure | plans | plan <id> | plan-done <bool>
          weight <detailId> <kg> | menu | meal-done <mealId> <bool> | health
Admin:    users | user <id> | del-user <id>
          plan-create <userId> <name> | plan-load <id> | plan-del
          detail-add <exercise> <order> <reps> <sets> | detail-upd <id> <order> <reps> <sets> | detail-del <id>
          menu-create <userId> | menu-load <userId> | menu-del
          meal-add <name> <order> <p> <c> <f> | meal-upd <id> <p> <c> <f> | meal-del <id>
          exercises | ex-add <name> <group> [video] | ex-del <id>
          health-view <userId> | health-del <userId>
Always:   logout | help | exit`)
}
