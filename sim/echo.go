package sim

import "github.com/sirupsen/logrus"

// EchoPeer models the remote endpoint: everything that arrives on the
// inbound link is acknowledged immediately by writing the same byte count
// onto the return link. The original send timestamp is carried forward so
// the sender measures true end-to-end round-trip latency.
type EchoPeer struct {
	inbound  *Link // carries sender-originated traffic
	outbound *Link // carries acknowledgments back
}

// NewEchoPeer creates a peer reading from inbound and acking on outbound.
func NewEchoPeer(inbound, outbound *Link) *EchoPeer {
	return &EchoPeer{inbound: inbound, outbound: outbound}
}

// Update drains the inbound link and re-injects the read bytes onto the
// return link under their original timestamp, never now.
func (e *EchoPeer) Update(now int64) {
	oldest, n, ok := e.inbound.Read()
	if !ok {
		return
	}
	e.outbound.Write(n, oldest)
	logrus.Debugf("echo: acked %d bytes of age %d with timestamp %d", n, now-oldest, oldest)
}
