package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"rogue-server/internal/engine"
	"rogue-server/internal/version"
	"rogue-server/pkg/logger"
)

// Server раздает игровые сессии по WebSocket: одно подключение - один
// приватный мир со своим обработчиком ходов.
type Server struct {
	GameConfig engine.Config
	RandomSeed bool // true - каждой сессии свое случайное зерно
	Port       string
}

func New(cfg engine.Config, randomSeed bool, port string) *Server {
	return &Server{
		GameConfig: cfg,
		RandomSeed: randomSeed,
		Port:       port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	logger.Log.Infof("Rogue server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	cfg := s.GameConfig
	if s.RandomSeed {
		cfg = engine.NewConfig()
		cfg.Size = s.GameConfig.Size
	}

	client := NewClient(engine.NewGame(cfg), conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
