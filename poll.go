// Pollbox Live Poll
//
// One presenter poses a timed multiple-choice question; any number of
// participants submit at most one answer each before the deadline expires.
//
// Features:
// - WebSockets per role: /poll/ws for participants, /present/ws for presenters
// - Participants identified by cookie (connection ID), names self-asserted
// - Duplicate display names prevented across currently connected participants
// - Rejection messages sent only to the offending client
// - Single active question at a time, enforced server-side
// - Server-authoritative countdown; clients only re-derive it for display
// - Tallies revealed to a participant only once they have answered (or the
//   question has closed), so pending responses are not biased
// - Presenter can kick participants and close a question early
// - Roster snapshots (full list, not deltas) pushed to presenters on churn
// - In-browser QR button to share the participant join URL, backed by go-qrcode

package main

import (
	_ "embed"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

const (
	minQuestionSeconds = 10
	maxQuestionSeconds = 300

	// Outbound queue depth per connection. A client that falls this far
	// behind is dropped rather than allowed to stall anyone else.
	sendQueueDepth = 32
)

type clientRole int

const (
	roleParticipant clientRole = iota
	rolePresenter
)

func (r clientRole) String() string {
	if r == rolePresenter {
		return "presenter"
	}
	return "participant"
}

// Messages coming from clients
type ClientMessage struct {
	Type         string      `json:"type"`                    // "join", "answer", "ask", "kick", "close"
	Name         string      `json:"name,omitempty"`          // join
	OptionID     string      `json:"option_id,omitempty"`     // answer
	Text         string      `json:"text,omitempty"`          // ask
	Options      []AskOption `json:"options,omitempty"`       // ask
	Duration     int         `json:"duration,omitempty"`      // ask, seconds
	ConnectionID string      `json:"connection_id,omitempty"` // kick
}

type AskOption struct {
	Text string `json:"text"`
}

// Option is one answer choice of a question. IDs are unique within the
// question and are what participants submit.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is immutable once created.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Options  []Option `json:"options"`
	Duration int      `json:"duration"` // seconds
}

// SessionInfoMessage is sent immediately on connect so the client knows its
// role and connection identity before deciding whether to auto-rejoin.
type SessionInfoMessage struct {
	Type         string `json:"type"` // "session_info"
	Role         string `json:"role"`
	ConnectionID string `json:"connection_id"`
}

// QuestionMessage announces the active question. EndsAt is the
// server-authoritative deadline; clients re-derive their countdown from it
// and their local clock, but it never gates answer acceptance.
type QuestionMessage struct {
	Type     string    `json:"type"` // "question"
	Question Question  `json:"question"`
	EndsAt   time.Time `json:"ends_at"`
}

// TallyMessage carries per-option vote counts. Sent to presenters on every
// accepted answer, and to participants who have already answered.
type TallyMessage struct {
	Type   string         `json:"type"` // "tally"
	Counts map[string]int `json:"counts"`
	Active bool           `json:"active"`
}

// ClosedMessage carries the frozen final counts together with the closed
// question, so late joiners can still render it.
type ClosedMessage struct {
	Type     string         `json:"type"` // "question_closed"
	Counts   map[string]int `json:"counts"`
	Question Question       `json:"question"`
}

// SimpleMessage is for generic notifications ("no_question", "awaiting_answer",
// "kicked").
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// RejectMessage is a targeted reply for a failed operation. Never broadcast.
// Type is "error" except for name collisions, which go out as "name_taken"
// so the client can drop its stored name.
type RejectMessage struct {
	Type    string     `json:"type"`
	Kind    rejectKind `json:"kind"`
	Message string     `json:"message"`
}

type RosterEntry struct {
	ConnectionID string `json:"connection_id"`
	Name         string `json:"name"`
}

// RosterMessage is the full current roster, not a delta, so presenter views
// converge even after missed intermediate events.
type RosterMessage struct {
	Type         string        `json:"type"` // "roster"
	Participants []RosterEntry `json:"participants"`
}

// Participant holds what we store server-side about a joined participant.
type Participant struct {
	ConnectionID string
	Name         string
	JoinedAt     time.Time
}

// answerRecord is one accepted answer. Keyed by display name within a single
// question instance; never mutated or deleted once inserted.
type answerRecord struct {
	name        string
	optionID    string
	submittedAt time.Time
}

type sessionPhase int

const (
	phaseIdle sessionPhase = iota
	phaseActive
	phaseClosed
)

type Client struct {
	conn   *websocket.Conn
	send   chan any
	connID string
	role   clientRole
}

type joinRequest struct {
	client *Client
	msg    ClientMessage
}

type answerRequest struct {
	client *Client
	msg    ClientMessage
}

type presenterCommand struct {
	client *Client
	msg    ClientMessage
}

// Hub owns the whole poll session: the participant roster, the single
// question slot, the answer ledger, and the countdown. All mutations happen
// under h.mu, one writer at a time; broadcast delivery is handed off to
// per-connection queues and never blocks a mutation.
type Hub struct {
	clients      map[*Client]bool
	participants map[string]*Participant // connection ID -> participant

	register chan *Client
	unreg    chan *Client
	joins    chan joinRequest
	answers  chan answerRequest
	commands chan presenterCommand

	mu    sync.RWMutex
	clock clockwork.Clock

	phase    sessionPhase
	question *Question
	openedAt time.Time
	endsAt   time.Time
	ledger   map[string]answerRecord // display name -> record, current question instance
	tally    map[string]int          // option ID -> accepted answers
}

func newHub(clock clockwork.Clock) *Hub {
	return &Hub{
		clients:      make(map[*Client]bool),
		participants: make(map[string]*Participant),
		register:     make(chan *Client),
		unreg:        make(chan *Client),
		joins:        make(chan joinRequest),
		answers:      make(chan answerRequest),
		commands:     make(chan presenterCommand),
		clock:        clock,
		phase:        phaseIdle,
	}
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.handleRegister(c)

		case c := <-h.unreg:
			h.handleUnregister(c)

		case jr := <-h.joins:
			h.handleJoin(jr.client, jr.msg)

		case ar := <-h.answers:
			h.handleAnswer(ar.client, ar.msg)

		case cmd := <-h.commands:
			switch cmd.msg.Type {
			case "ask":
				h.handleAsk(cmd.client, cmd.msg)
			case "kick":
				h.handleKick(cmd.client, cmd.msg)
			case "close":
				h.handleEarlyClose(cmd.client)
			}
		}
	}
}

// trySendLocked enqueues msg for a single client without blocking. A client
// whose queue is full is dropped; state already computed stands regardless,
// so a slow or unreachable recipient only ever loses its own notifications.
func (h *Hub) trySendLocked(c *Client, msg any) {
	if !h.clients[c] {
		return
	}

	select {
	case c.send <- msg:
	default:
		log.Warn().
			Str("connection_id", c.connID).
			Str("role", c.role.String()).
			Msg("outbound queue full, dropping client")
		delete(h.clients, c)
		close(c.send)
		if h.forgetParticipantLocked(c) {
			// The registry entry must go with the connection, or the ghost
			// would hold its name and roster slot forever. The roster
			// refresh runs after the current handler releases the lock, so
			// a drop discovered mid-broadcast cannot re-enter the iteration.
			go h.broadcastRoster()
		}
	}
}

// forgetParticipantLocked removes c's registry entry, freeing the display
// name, unless another connection with the same cookie is still attached.
// Reports whether the roster changed.
func (h *Hub) forgetParticipantLocked(c *Client) bool {
	p := h.participants[c.connID]
	if p == nil {
		return false
	}

	// Another tab with the same cookie keeps the participant registered.
	for other := range h.clients {
		if other.connID == c.connID && other.role == roleParticipant {
			return false
		}
	}

	delete(h.participants, c.connID)

	log.Info().
		Str("connection_id", c.connID).
		Str("name", p.Name).
		Msg("participant left")
	return true
}

func (h *Hub) broadcastRoster() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcastRosterLocked()
}

func (h *Hub) dropLocked(c *Client) {
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) copyTallyLocked() map[string]int {
	counts := make(map[string]int, len(h.tally))
	for id, n := range h.tally {
		counts[id] = n
	}
	return counts
}

func (h *Hub) hasAnsweredLocked(c *Client) bool {
	p := h.participants[c.connID]
	if p == nil {
		return false
	}
	_, ok := h.ledger[p.Name]
	return ok
}

// sendSnapshotLocked brings one connection up to date with the current
// session phase. Participants who have not answered an active question get
// an explicit "awaiting_answer" instead of a tally.
func (h *Hub) sendSnapshotLocked(c *Client) {
	switch h.phase {
	case phaseIdle:
		h.trySendLocked(c, SimpleMessage{
			Type:    "no_question",
			Message: "Waiting for the presenter to ask a question.",
		})

	case phaseActive:
		h.trySendLocked(c, QuestionMessage{
			Type:     "question",
			Question: *h.question,
			EndsAt:   h.endsAt,
		})
		if c.role == rolePresenter || h.hasAnsweredLocked(c) {
			h.trySendLocked(c, TallyMessage{
				Type:   "tally",
				Counts: h.copyTallyLocked(),
				Active: true,
			})
		} else {
			h.trySendLocked(c, SimpleMessage{
				Type:    "awaiting_answer",
				Message: "A question is active. Submit your answer!",
			})
		}

	case phaseClosed:
		h.trySendLocked(c, ClosedMessage{
			Type:     "question_closed",
			Counts:   h.copyTallyLocked(),
			Question: *h.question,
		})
	}
}

// broadcastRosterLocked pushes the full roster to all presenter connections.
func (h *Hub) broadcastRosterLocked() {
	entries := make([]RosterEntry, 0, len(h.participants))
	for _, p := range h.participants {
		entries = append(entries, RosterEntry{
			ConnectionID: p.ConnectionID,
			Name:         p.Name,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := h.participants[entries[i].ConnectionID], h.participants[entries[j].ConnectionID]
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return a.Name < b.Name
	})

	msg := RosterMessage{
		Type:         "roster",
		Participants: entries,
	}

	for client := range h.clients {
		if client.role == rolePresenter {
			h.trySendLocked(client, msg)
		}
	}
}

// broadcastTallyLocked delivers the current tally to presenters and to
// participants who have already answered. Participants still deciding never
// see intermediate counts.
func (h *Hub) broadcastTallyLocked(active bool) {
	counts := h.copyTallyLocked()

	for client := range h.clients {
		if client.role != rolePresenter && !h.hasAnsweredLocked(client) {
			continue
		}
		h.trySendLocked(client, TallyMessage{
			Type:   "tally",
			Counts: counts,
			Active: active,
		})
	}
}

func (h *Hub) handleRegister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = true

	h.trySendLocked(c, SessionInfoMessage{
		Type:         "session_info",
		Role:         c.role.String(),
		ConnectionID: c.connID,
	})

	// Presenters observe immediately; participants get their snapshot once
	// they have joined with a name.
	if c.role == rolePresenter {
		h.broadcastRosterLocked()
		h.sendSnapshotLocked(c)
	}

	log.Debug().
		Str("connection_id", c.connID).
		Str("role", c.role.String()).
		Msg("connection registered")
}

// handleUnregister is idempotent: repeated disconnects for an already-absent
// connection change nothing and emit no roster event.
func (h *Hub) handleUnregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	close(c.send)

	if h.forgetParticipantLocked(c) {
		h.broadcastRosterLocked()
	}
}

// handleJoin processes "join" messages. Name uniqueness is checked against
// currently registered participants only; a freed name is immediately
// available again. Answer records survive the departure of their author, so
// a rejoin with the same name resumes the same identity and cannot answer a
// second time (see handleAnswer).
func (h *Hub) handleJoin(c *Client, msg ClientMessage) {
	if c.role != roleParticipant {
		return
	}

	name := strings.TrimSpace(msg.Name)
	if name == "" {
		h.mu.Lock()
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectInvalidName,
			Message: "Please enter a name.",
		})
		h.mu.Unlock()
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, p := range h.participants {
		if id != c.connID && p.Name == name {
			// Distinct wire type so the client can clear its stored name
			// instead of retrying it on the next reconnect.
			h.trySendLocked(c, RejectMessage{
				Type:    "name_taken",
				Kind:    rejectNameTaken,
				Message: "That name is already taken. Please choose a different name.",
			})
			return
		}
	}

	if p := h.participants[c.connID]; p != nil {
		if p.Name != name {
			// A rename mid-question would abandon the ledger entry keyed by
			// the old name and grant a second answer.
			if h.phase == phaseActive {
				h.trySendLocked(c, RejectMessage{
					Type:    "error",
					Kind:    rejectInvalidName,
					Message: "You cannot change your name while a question is active.",
				})
				return
			}
			p.Name = name
			h.broadcastRosterLocked()
		}
		h.sendSnapshotLocked(c)
		return
	}

	h.participants[c.connID] = &Participant{
		ConnectionID: c.connID,
		Name:         name,
		JoinedAt:     h.clock.Now(),
	}

	h.broadcastRosterLocked()
	h.sendSnapshotLocked(c)

	log.Info().
		Str("connection_id", c.connID).
		Str("name", name).
		Msg("participant joined")
}

// handleAnswer processes "answer" messages. Acceptance is gated solely by
// server state at the moment the submission is processed; a submission
// arriving after server-side expiry is rejected no matter what the client's
// own countdown showed.
func (h *Hub) handleAnswer(c *Client, msg ClientMessage) {
	if c.role != roleParticipant {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	p := h.participants[c.connID]
	if p == nil {
		log.Debug().Str("connection_id", c.connID).Msg("answer from unjoined connection ignored")
		return
	}

	switch h.phase {
	case phaseIdle:
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectNoQuestion,
			Message: "There is no active question.",
		})
		return
	case phaseClosed:
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectQuestionClosed,
			Message: "The question has closed; answers are no longer accepted.",
		})
		return
	}

	valid := false
	for _, opt := range h.question.Options {
		if opt.ID == msg.OptionID {
			valid = true
			break
		}
	}
	if !valid {
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectUnknownOption,
			Message: "That option does not belong to the active question.",
		})
		return
	}

	if _, ok := h.ledger[p.Name]; ok {
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectAlreadyAnswered,
			Message: "You have already submitted an answer.",
		})
		return
	}

	h.ledger[p.Name] = answerRecord{
		name:        p.Name,
		optionID:    msg.OptionID,
		submittedAt: h.clock.Now(),
	}
	h.tally[msg.OptionID]++

	h.broadcastTallyLocked(true)

	log.Debug().
		Str("name", p.Name).
		Str("option_id", msg.OptionID).
		Str("question_id", h.question.ID).
		Msg("answer accepted")
}

// handleAsk processes a presenter's "ask" command: validates the question,
// installs it as the single active question, and starts the countdown.
func (h *Hub) handleAsk(c *Client, msg ClientMessage) {
	text := strings.TrimSpace(msg.Text)

	options := make([]Option, 0, len(msg.Options))
	for _, opt := range msg.Options {
		optText := strings.TrimSpace(opt.Text)
		if optText == "" {
			continue
		}
		options = append(options, Option{
			ID:   uuid.NewString(),
			Text: optText,
		})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if text == "" || len(options) < 2 {
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectInvalidQuestion,
			Message: "A question needs text and at least two non-empty options.",
		})
		return
	}
	if msg.Duration < minQuestionSeconds || msg.Duration > maxQuestionSeconds {
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectInvalidQuestion,
			Message: "Question duration must be between 10 and 300 seconds.",
		})
		return
	}
	if h.phase == phaseActive {
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectQuestionActive,
			Message: "A question is already active. Wait for it to close.",
		})
		return
	}

	question := &Question{
		ID:       uuid.NewString(),
		Text:     text,
		Options:  options,
		Duration: msg.Duration,
	}

	// Fresh ledger and all-zero tally for the new instance.
	h.ledger = make(map[string]answerRecord)
	h.tally = make(map[string]int, len(options))
	for _, opt := range options {
		h.tally[opt.ID] = 0
	}

	h.question = question
	h.phase = phaseActive
	h.openedAt = h.clock.Now()
	h.endsAt = h.openedAt.Add(time.Duration(msg.Duration) * time.Second)

	// Server-side authoritative deadline. A stale timer from an earlier
	// question no-ops inside closeQuestion via the instance ID guard.
	go func(questionID string, fire <-chan time.Time) {
		<-fire
		h.closeQuestion(questionID)
	}(question.ID, h.clock.After(time.Duration(msg.Duration)*time.Second))

	questionMsg := QuestionMessage{
		Type:     "question",
		Question: *question,
		EndsAt:   h.endsAt,
	}
	for client := range h.clients {
		h.trySendLocked(client, questionMsg)
	}

	// Initial all-zero tally; only presenters qualify to see it.
	h.broadcastTallyLocked(true)

	log.Info().
		Str("question_id", question.ID).
		Str("text", text).
		Int("options", len(options)).
		Int("duration", msg.Duration).
		Msg("question asked")
}

// closeQuestion runs the QuestionActive -> QuestionClosed transition for
// exactly the named question instance. Safe to call repeatedly and from
// concurrent timer firings: closure executes only if that instance is still
// active.
func (h *Hub) closeQuestion(questionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closeQuestionLocked(questionID)
}

func (h *Hub) closeQuestionLocked(questionID string) {
	if h.phase != phaseActive || h.question == nil || h.question.ID != questionID {
		return
	}

	h.phase = phaseClosed

	msg := ClosedMessage{
		Type:     "question_closed",
		Counts:   h.copyTallyLocked(),
		Question: *h.question,
	}
	for client := range h.clients {
		h.trySendLocked(client, msg)
	}

	log.Info().
		Str("question_id", questionID).
		Int("answers", len(h.ledger)).
		Msg("question closed")
}

// handleEarlyClose lets the presenter end the active question before the
// countdown elapses.
func (h *Hub) handleEarlyClose(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.phase != phaseActive {
		h.trySendLocked(c, RejectMessage{
			Type:    "error",
			Kind:    rejectNoQuestion,
			Message: "There is no active question to close.",
		})
		return
	}

	h.closeQuestionLocked(h.question.ID)
}

// handleKick processes a presenter's "kick" command. The target's prior
// answer records stand; only their registration (and name claim) goes away.
// Kicking an already-absent connection is a no-op, like leave.
func (h *Hub) handleKick(c *Client, msg ClientMessage) {
	target := msg.ConnectionID
	if target == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	p := h.participants[target]
	if p == nil {
		log.Debug().Str("connection_id", target).Msg("kick target not registered")
		return
	}

	delete(h.participants, target)

	for client := range h.clients {
		if client.connID == target && client.role == roleParticipant {
			h.trySendLocked(client, SimpleMessage{
				Type:    "kicked",
				Message: "You have been removed by the presenter.",
			})
			h.dropLocked(client)
		}
	}

	h.broadcastRosterLocked()

	log.Info().
		Str("connection_id", target).
		Str("name", p.Name).
		Msg("participant kicked")
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const connCookieName = "pollbox_id"

func getOrSetConnectionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(connCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     connCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

func serveWS(h *Hub, role clientRole) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		connID := getOrSetConnectionID(w, r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}

		client := &Client{
			conn:   conn,
			send:   make(chan any, sendQueueDepth),
			connID: connID,
			role:   role,
		}

		h.register <- client

		go client.writePump()
		client.readPump(h)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "join":
			h.joins <- joinRequest{
				client: c,
				msg:    msg,
			}
		case "answer":
			h.answers <- answerRequest{
				client: c,
				msg:    msg,
			}
		case "ask", "kick", "close":
			if c.role != rolePresenter {
				continue
			}
			h.commands <- presenterCommand{
				client: c,
				msg:    msg,
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the participant join URL using
// go-qrcode, for display on the presenter page.
func qrHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at .../poll/qr; strip trailing "/qr" to get the join URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed poll/index.html
var participantHTML []byte

//go:embed poll/present.html
var presenterHTML []byte

func servePollPage(cfg *Config, page []byte) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetConnectionID(w, r)

		_, _ = w.Write(page)
	}
}

// registerPoll sets up the single global poll session and its routes:
//   - /poll            → participant client
//   - /poll/ws         → participant WebSocket
//   - /poll/qr         → PNG QR code for the participant join URL
//   - /present         → presenter client
//   - /present/ws      → presenter WebSocket
func registerPoll(cfg *Config, mux *httprouter.Router, errs chan<- error) {
	h := newHub(clockwork.NewRealClock())
	go h.run()

	mux.GET(cfg.prefix+"/poll", servePollPage(cfg, participantHTML))
	mux.GET(cfg.prefix+"/present", servePollPage(cfg, presenterHTML))

	mux.GET(cfg.prefix+"/assets/poll/app.css", serveAssets(cfg, errs))
	mux.GET(cfg.prefix+"/assets/poll/app.js", serveAssets(cfg, errs))

	mux.GET(cfg.prefix+"/poll/ws", serveWS(h, roleParticipant))
	mux.GET(cfg.prefix+"/present/ws", serveWS(h, rolePresenter))

	mux.GET(cfg.prefix+"/poll/qr", qrHandler)
}
