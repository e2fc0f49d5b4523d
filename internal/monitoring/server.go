package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"dairy-backend/internal/health"
	"dairy-backend/internal/ledger"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MonitoringServer serves Prometheus metrics, a stats endpoint and a
// websocket live feed on its own port, separate from the API.
type MonitoringServer struct {
	ledger  *ledger.Service
	checker *health.HealthChecker
	port    int

	clientsMux sync.Mutex
	clients    map[*websocket.Conn]bool

	startedAt time.Time
}

type Stats struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	Customers     int     `json:"customers"`
	Products      int     `json:"products"`
	DailyEntries  int     `json:"daily_entries"`
	MonthlyBills  int     `json:"monthly_bills"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
	StorageMS     int64   `json:"storage_response_time_ms"`
}

func NewMonitoringServer(ledgerService *ledger.Service, checker *health.HealthChecker, port int) *MonitoringServer {
	return &MonitoringServer{
		ledger:    ledgerService,
		checker:   checker,
		port:      port,
		clients:   make(map[*websocket.Conn]bool),
		startedAt: time.Now(),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (m *MonitoringServer) collect() Stats {
	basic := m.checker.CheckBasic()
	return Stats{
		Status:        basic.Status,
		Uptime:        time.Since(m.startedAt).Round(time.Second).String(),
		Customers:     len(m.ledger.ListCustomers()),
		Products:      len(m.ledger.ListProducts()),
		DailyEntries:  len(m.ledger.ListDailyEntries()),
		MonthlyBills:  len(m.ledger.ListBills()),
		CPUPercent:    basic.Host.CPUPercent,
		MemoryPercent: basic.Host.MemoryPercent,
		DiskPercent:   basic.Host.DiskPercent,
		StorageMS:     basic.Storage.ResponseTime,
	}
}

func (m *MonitoringServer) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m.collect())
}

// handleWS streams stats to the client every 5 seconds until it leaves.
func (m *MonitoringServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Monitoring] Websocket upgrade failed: %v", err)
		return
	}

	m.clientsMux.Lock()
	m.clients[conn] = true
	m.clientsMux.Unlock()

	defer func() {
		m.clientsMux.Lock()
		delete(m.clients, conn)
		m.clientsMux.Unlock()
		conn.Close()
	}()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		if err := conn.WriteJSON(m.collect()); err != nil {
			return
		}
		<-ticker.C
	}
}

func (m *MonitoringServer) Start() {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/api/stats", m.handleStats).Methods("GET")
	r.HandleFunc("/ws", m.handleWS)

	addr := fmt.Sprintf(":%d", m.port)
	log.Printf("[Monitoring] Dashboard server on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Printf("[Monitoring] Server stopped: %v", err)
	}
}
