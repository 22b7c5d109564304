package locomotion

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
)

// IntentSource provides the horizontal movement a character wants to make, in units per second. It
// is read once at the start of every frame.
type IntentSource interface {
	Intent() mgl32.Vec3
}

// ConstantIntent is an intent source that always wants the same movement.
type ConstantIntent mgl32.Vec3

func (c ConstantIntent) Intent() mgl32.Vec3 {
	return mgl32.Vec3(c)
}

// Key is a movement key of a KeyIntent.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	keyCount
)

// KeyIntent turns four held movement keys into an intent along a forward and a right axis. Keys may
// be pressed and released from any goroutine.
type KeyIntent struct {
	forward, right mgl32.Vec3
	speed          float32

	mu   sync.Mutex
	held [keyCount]bool
}

// NewKeyIntent returns a key intent source moving at speed along the axes passed.
func NewKeyIntent(forward, right mgl32.Vec3, speed float32) *KeyIntent {
	return &KeyIntent{forward: forward, right: right, speed: speed}
}

// Press marks the key passed as held.
func (k *KeyIntent) Press(key Key) {
	k.Set(key, true)
}

// Release marks the key passed as released.
func (k *KeyIntent) Release(key Key) {
	k.Set(key, false)
}

// Set updates whether the key passed is held.
func (k *KeyIntent) Set(key Key, held bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[key] = held
}

// Intent returns the movement of the held keys scaled to the speed of the source. Forward wins over
// backward and left wins over right when both are held.
func (k *KeyIntent) Intent() mgl32.Vec3 {
	k.mu.Lock()
	held := k.held
	k.mu.Unlock()

	var movement mgl32.Vec3
	if held[KeyForward] {
		movement = movement.Add(k.forward)
	} else if held[KeyBackward] {
		movement = movement.Sub(k.forward)
	}

	if held[KeyLeft] {
		movement = movement.Sub(k.right)
	} else if held[KeyRight] {
		movement = movement.Add(k.right)
	}

	dir, ok := game.SafeNormalize(movement)
	if !ok {
		return mgl32.Vec3{}
	}
	return dir.Mul(k.speed)
}
