package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/killer-backend/internal/apperror"
	"github.com/rocketscienceinc/killer-backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

type handlerFunc func(ctx context.Context, connectionID string, msg *Message) (any, error)

type Server struct {
	logger      *slog.Logger
	gameUseCase usecase.GameUseCase

	handlers map[string]handlerFunc

	connectionsMutex sync.RWMutex
	connections      map[string]*websocket.Conn
}

func New(logger *slog.Logger, gameUseCase usecase.GameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,

		handlers:    make(map[string]handlerFunc),
		connections: make(map[string]*websocket.Conn),
	}

	server.handlers[actionGameJoin] = server.handleJoinGame
	server.handlers[actionCharacterChoose] = server.handleChooseCharacter
	server.handlers[actionGameStart] = server.handleStartGame
	server.handlers[actionPlayerReady] = server.handleToggleReady
	server.handlers[actionGamePause] = server.handlePauseGame
	server.handlers[actionGameResume] = server.handleResumeGame
	server.handlers[actionGameFinish] = server.handleFinishGame
	server.handlers[actionRoundTurn] = server.handlePlayTurn
	server.handlers[actionRoundEnd] = server.handleEndRound
	server.handlers[actionPlayerScore] = server.handleAwardPoints
	server.handlers[actionGameClose] = server.handleCloseGame
	server.handlers[actionGameState] = server.handleState

	return server
}

func (that *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/ws", that.handleWebSocket)

	return r
}

// Start - starts WebSocket server and blocks until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down websocket server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	that.closeAll(websocket.StatusGoingAway, "server shutting down")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func (that *Server) handleWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleWebSocket")

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Error("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := req.Context()
	connectionID := uuid.NewString()
	log = log.With("connectionID", connectionID)

	that.connectionsMutex.Lock()
	that.connections[connectionID] = conn
	that.connectionsMutex.Unlock()

	log.Info("WebSocket connection established")

	if err = sendMessage(ctx, conn, actionConnect, ConnectPayload{ConnectionID: connectionID}); err != nil {
		log.Error("failed to send connect message", "error", err)
	} else {
		that.handleMessages(ctx, connectionID, conn)
	}

	that.disconnect(context.WithoutCancel(ctx), connectionID)
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, connectionID string, conn *websocket.Conn) {
	log := that.logger.With("method", "handleMessages", "connectionID", connectionID)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			log.Debug("websocket read ended", "error", err)
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			that.reply(ctx, conn, "", nil, apperror.ErrInvalidPayload)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.reply(ctx, conn, message.Action, nil, apperror.ErrUnknownAction)
			continue
		}

		payload, err := handler(ctx, connectionID, &message)
		that.reply(ctx, conn, message.Action, payload, err)

		if err != nil {
			log.Info("action rejected", "action", message.Action, "kind", apperror.KindOf(err), "error", err)
			continue
		}

		if message.Action != actionGameState {
			that.broadcastState(ctx)
		}
	}
}

func (that *Server) reply(ctx context.Context, conn *websocket.Conn, action string, payload any, err error) {
	log := that.logger.With("method", "reply")

	if err != nil {
		payload = ErrorPayload{Error: apperror.From(err)}
	}

	if sendErr := sendMessage(ctx, conn, action, payload); sendErr != nil {
		log.Error("failed to send response", "action", action, "error", sendErr)
	}
}

// broadcastState sends the current snapshot to every open connection.
func (that *Server) broadcastState(ctx context.Context) {
	log := that.logger.With("method", "broadcastState")

	snapshot := that.gameUseCase.State(ctx)

	for connectionID, conn := range that.snapshotConnections() {
		if err := sendMessage(ctx, conn, actionGameState, snapshot); err != nil {
			log.Warn("failed to send game state", "connectionID", connectionID, "error", err)
		}
	}
}

func (that *Server) disconnect(ctx context.Context, connectionID string) {
	log := that.logger.With("method", "disconnect", "connectionID", connectionID)

	that.connectionsMutex.Lock()
	delete(that.connections, connectionID)
	that.connectionsMutex.Unlock()

	resp, err := that.gameUseCase.Disconnect(ctx, connectionID)
	if err != nil {
		log.Error("failed to disconnect player", "error", err)
		return
	}

	log.Info("WebSocket connection closed", "wasPlayer", resp.Disconnected)

	if resp.Disconnected {
		that.broadcastState(ctx)
	}
}

func (that *Server) snapshotConnections() map[string]*websocket.Conn {
	that.connectionsMutex.RLock()
	defer that.connectionsMutex.RUnlock()

	connections := make(map[string]*websocket.Conn, len(that.connections))
	for id, conn := range that.connections {
		connections[id] = conn
	}

	return connections
}

func (that *Server) closeAll(code websocket.StatusCode, reason string) {
	for _, conn := range that.snapshotConnections() {
		_ = conn.Close(code, reason)
	}
}
