package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	"github.com/vinser/toyrobot/internal/robot"
)

// State holds persistent settings and the last known robot.
type State struct {
	SessionID  uuid.UUID `json:"session_id"`           // Identifies the console session that wrote the state
	SpriteSize string    `json:"sprite_size"`          // Sprite size: small, medium, large
	Router     string    `json:"router"`               // Route heuristic: greedy or toward
	AutoSave   bool      `json:"auto_save"`            // Save the robot after every change
	TablePath  string    `json:"table_path,omitempty"` // Table config file, empty for the built-in table
	Robot      *Record   `json:"robot,omitempty"`      // Last robot state, nil if never placed
}

// Record is the persisted form of a robot.
type Record struct {
	ID          uuid.UUID         `json:"id"`
	X           int               `json:"x"`
	Y           int               `json:"y"`
	Orientation robot.Orientation `json:"orientation"`
	SavedAt     time.Time         `json:"saved_at"`
}

// Snapshot returns the robot state held by the record.
func (r Record) Snapshot() robot.Snapshot {
	return robot.Snapshot{X: r.X, Y: r.Y, Orientation: r.Orientation}
}

const (
	RouterDefault = "greedy"
	appID         = "toyrobot"
)

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	id, err := machineid.ProtectedID(appID)
	if err != nil {
		id = "default-toyrobot-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(id))
	return sum[:]
}

// New returns default settings for a fresh session.
func New() *State {
	return &State{
		SessionID:  uuid.New(),
		SpriteSize: robot.SpriteDefault,
		Router:     RouterDefault,
		AutoSave:   true,
	}
}

// Remember stores the robot snapshot, keeping the record ID across updates.
func (s *State) Remember(snap robot.Snapshot) {
	if s.Robot == nil {
		s.Robot = &Record{ID: uuid.New()}
	}
	s.Robot.X = snap.X
	s.Robot.Y = snap.Y
	s.Robot.Orientation = snap.Orientation
	s.Robot.SavedAt = time.Now().UTC()
}

// Forget drops the saved robot.
func (s *State) Forget() {
	s.Robot = nil
}

// Save persists the state to the default location.
func (s *State) Save() error {
	path, err := getSavePath()
	if err != nil {
		return err
	}
	return s.SaveTo(path)
}

// SaveTo persists the state to an encrypted file with an integrity check.
func (s *State) SaveTo(path string) error {
	// Serialize to JSON
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encrypted, 0o600)
}

// Load reads the state from the default location.
// Any failure results in fresh defaults.
func Load() *State {
	path, err := getSavePath()
	if err != nil {
		return New()
	}
	return LoadFrom(path)
}

// LoadFrom reads the state from path, decrypts and verifies it.
func LoadFrom(path string) *State {
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return New()
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return New()
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return New()
	}

	s := &State{}
	if err = json.Unmarshal(payload, s); err != nil {
		return New() // Corrupted JSON
	}
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	if s.SpriteSize == "" {
		s.SpriteSize = robot.SpriteDefault
	}
	if s.Router == "" {
		s.Router = RouterDefault
	}
	return s
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// getSavePath returns the path to the save file inside the user config directory.
func getSavePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	saveDir := filepath.Join(configDir, appID)
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, "state.dat"), nil
}
