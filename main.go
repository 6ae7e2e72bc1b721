package main

import (
	auth "Strata/internal/auth"
	batch "Strata/internal/calc/batch"
	capacity "Strata/internal/calc/capacity"
	compare "Strata/internal/calc/compare"
	design "Strata/internal/calc/design"
	export "Strata/internal/calc/export"
	importer "Strata/internal/calc/importer"
	layout "Strata/internal/calc/layout"
	quantity "Strata/internal/calc/quantity"
	report "Strata/internal/calc/report"
	settlement "Strata/internal/calc/settlement"
	project "Strata/internal/project"
	repo "Strata/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	designRepo := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: designRepo}
	projectH := &project.ProjectHandler{Repo: designRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	capacityH := &capacity.Handler{}
	layoutH := &layout.Handler{}
	settlementH := &settlement.Handler{}
	quantityH := &quantity.Handler{}
	compareH := &compare.Handler{}
	designH := &design.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/capacity/calc", capacityH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/layout/calc", layoutH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/settlement/calc", settlementH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/settlement/curve", settlementH.Curve).Methods("POST")
	secureApi.HandleFunc("/tools/boq/calc", quantityH.Boq).Methods("POST")
	secureApi.HandleFunc("/tools/compare/calc", compareH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/design/calc", designH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/batch/capacity", batchH.Capacity).Methods("POST")
	secureApi.HandleFunc("/tools/import/capacity", importerH.Capacity).Methods("POST")
	secureApi.HandleFunc("/tools/export/xlsx", exportH.Xlsx).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
	secureApi.HandleFunc("/dashboard", projectH.GetDashboard).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")
	fmt.Println("Закрытие активных соединений")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}
