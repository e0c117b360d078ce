package hostarray

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Capsule ties the lifetime of an opaque value to the lifetime of the host
// array owning it. The destructor runs exactly once, when the last
// reference to the wrapping array is dropped.
type Capsule struct {
	value      interface{}
	destructor func(interface{})
	released   uint32
}

func NewCapsule(value interface{}, destructor func(interface{})) *Capsule {
	return &Capsule{value: value, destructor: destructor}
}

func (c *Capsule) Value() interface{} {
	return c.value
}

func (c *Capsule) Released() bool {
	return atomic.LoadUint32(&c.released) != 0
}

func (c *Capsule) Release() {
	if !atomic.CompareAndSwapUint32(&c.released, 0, 1) {
		return
	}
	logrus.Debugf("Releasing capsule holding %T", c.value)
	if c.destructor != nil {
		c.destructor(c.value)
	}
}
