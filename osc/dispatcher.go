package osc

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ReservedAddressChars are the pattern characters a method address may not contain.
const ReservedAddressChars = "*?,[]{}# "

// ErrNoMethod is returned by Dispatch when no method is registered for a message's address pattern.
var ErrNoMethod = errors.New("osc: no method for address")

// Method is an interface for OSC Methods.
type Method interface {
	HandleMessage(msg *Message) error
}

// MethodFunc implements the Method interface. Type definition for an OSC Method function.
type MethodFunc func(msg *Message) error

// HandleMessage calls itself with the given OSC Message. Implements the Method interface.
func (f MethodFunc) HandleMessage(msg *Message) error {
	return f(msg)
}

// Dispatcher handles the dispatching of received OSC Packets to Methods for their given Address.
type Dispatcher struct {
	methods map[string]Method
	// addrs holds the keys of methods in sorted order, so dispatch order is stable.
	addrs  []string
	logger *zap.Logger
}

// NewDispatcher returns an empty Dispatcher. A nil logger disables logging.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{logger: logger}
}

func (d *Dispatcher) log() *zap.Logger {
	if d.logger == nil {
		return zap.NewNop()
	}
	return d.logger
}

// AddMethod adds a new OSC Method for the given OSC Address.
func (d *Dispatcher) AddMethod(addr string, method Method) error {
	if d.methods == nil {
		d.methods = make(map[string]Method)
	}

	if !strings.HasPrefix(addr, "/") {
		return fmt.Errorf("AddMethod: OSC Method address must start with '/': %q", addr)
	}

	if strings.ContainsAny(addr, ReservedAddressChars) {
		return fmt.Errorf("AddMethod: OSC Method may not contain any characters in %q: %q", ReservedAddressChars, addr)
	}

	if _, ok := d.methods[addr]; ok {
		return fmt.Errorf("AddMethod: OSC Method exists already: %s", addr)
	}

	d.methods[addr] = method
	i := sort.SearchStrings(d.addrs, addr)
	d.addrs = append(d.addrs, "")
	copy(d.addrs[i+1:], d.addrs[i:])
	d.addrs[i] = addr
	return nil
}

// AddMethodFunc allows you to just pass a MethodFunc.
func (d *Dispatcher) AddMethodFunc(addr string, method MethodFunc) error {
	return d.AddMethod(addr, method)
}

// Addresses returns every registered address in sorted order.
func (d *Dispatcher) Addresses() []string {
	return append([]string(nil), d.addrs...)
}

// Dispatch dispatches OSC Packets. Messages go to every Method whose address matches the
// message's address pattern. Bundle elements are dispatched immediately, in order.
// The returned error joins the errors of all failed Methods.
func (d *Dispatcher) Dispatch(packet Packet) error {
	switch p := packet.(type) {
	default:
		return fmt.Errorf("dispatch: invalid Packet: %T", p)

	case *Message:
		return d.dispatchMessage(p)

	case *Bundle:
		var errs []error
		for _, elem := range p.Elements {
			if err := d.Dispatch(elem); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

func (d *Dispatcher) dispatchMessage(msg *Message) error {
	r, err := getRegEx(msg.Address)
	if err != nil {
		return fmt.Errorf("dispatch: invalid address pattern %q: %w", msg.Address, err)
	}

	var (
		matched int
		errs    []error
	)
	for _, addr := range d.addrs {
		if !r.MatchString(addr) {
			continue
		}
		matched++
		if err := d.methods[addr].HandleMessage(msg); err != nil {
			d.log().Warn("osc method failed",
				zap.String("address", addr),
				zap.Stringer("message", msg),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", addr, err))
		}
	}

	if matched == 0 {
		d.log().Debug("no osc method for address", zap.String("pattern", msg.Address))
		return fmt.Errorf("dispatch %s: %w", msg.Address, ErrNoMethod)
	}

	d.log().Debug("dispatched osc message",
		zap.String("pattern", msg.Address),
		zap.Int("methods", matched))
	return errors.Join(errs...)
}

// getRegEx returns an anchored regexp.Regexp for the given address pattern.
func getRegEx(pattern string) (*regexp.Regexp, error) {
	r := strings.NewReplacer(
		".", `\.`,
		"(", `\(`,
		")", `\)`,
		"+", `\+`,
		"$", `\$`,
		"^", `\^`,
		"|", `\|`,
		"*", "[^/]*",
		"{", "(",
		",", "|",
		"}", ")",
		"?", "[^/]",
		"[!", "[^",
	)

	return regexp.Compile("^" + r.Replace(pattern) + "$")
}
