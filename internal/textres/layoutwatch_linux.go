//go:build linux

package textres

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// D-Bus sources that announce keyboard layout switches.
const (
	ibusService         = "org.freedesktop.IBus"
	ibusInterface       = "org.freedesktop.IBus"
	ibusEngineChanged   = "GlobalEngineChanged"
	locale1Service      = "org.freedesktop.locale1"
	locale1Path         = "/org/freedesktop/locale1"
	propertiesInterface = "org.freedesktop.DBus.Properties"
)

// WatchLayoutChanges subscribes to layout-switch notifications and calls
// onChange for each one until ctx is cancelled. IBus engine switches come
// over the session bus; systemd-localed X11 layout edits come over the
// system bus. Either bus being unreachable is tolerated as long as one
// subscription succeeds.
func WatchLayoutChanges(ctx context.Context, onChange func(source string)) error {
	signals := make(chan *dbus.Signal, 16)
	var conns []*dbus.Conn

	if conn, err := dbus.SessionBus(); err == nil {
		err = conn.AddMatchSignal(
			dbus.WithMatchInterface(ibusInterface),
			dbus.WithMatchMember(ibusEngineChanged),
		)
		if err == nil {
			conn.Signal(signals)
			conns = append(conns, conn)
		}
	}

	if conn, err := dbus.SystemBus(); err == nil {
		err = conn.AddMatchSignal(
			dbus.WithMatchInterface(propertiesInterface),
			dbus.WithMatchMember("PropertiesChanged"),
			dbus.WithMatchObjectPath(locale1Path),
		)
		if err == nil {
			conn.Signal(signals)
			conns = append(conns, conn)
		}
	}

	if len(conns) == 0 {
		return fmt.Errorf("textres: no bus available for layout notifications")
	}

	go func() {
		defer func() {
			for _, conn := range conns {
				conn.RemoveSignal(signals)
			}
		}()
		for {
			select {
			case sig, ok := <-signals:
				if !ok {
					return
				}
				switch sig.Name {
				case ibusInterface + "." + ibusEngineChanged:
					engine := ""
					if len(sig.Body) > 0 {
						engine, _ = sig.Body[0].(string)
					}
					onChange("ibus:" + engine)
				case propertiesInterface + ".PropertiesChanged":
					// Only layout-relevant properties matter; locale1
					// announces X11Layout and X11Variant edits here.
					if len(sig.Body) > 0 {
						if iface, _ := sig.Body[0].(string); iface == locale1Service {
							onChange("locale1")
						}
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}
