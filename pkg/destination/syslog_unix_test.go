//go:build !windows && !plan9

package destination

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhopkin/xcglogger"
)

func listenUDP(t *testing.T) net.PacketConn {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readPacket(t *testing.T, conn net.PacketConn) string {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	buf := make([]byte, 2048)
	n, _, err := conn.ReadFrom(buf)
	require.NoError(t, err)

	return string(buf[:n])
}

func TestSyslogPriorities(t *testing.T) {
	conn := listenUDP(t)

	dest, err := NewSyslog("xcgtest", SyslogOptions{
		Options: levelOnly("syslog"),
		Network: "udp",
		Address: conn.LocalAddr().String(),
	})
	require.NoError(t, err)

	dest.Configure(func(o *xcglogger.Options) { o.Level = xcglogger.VerboseLevel })

	logger := xcglogger.New("app", xcglogger.WithLevel(xcglogger.VerboseLevel), xcglogger.WithDestinations(dest))

	tests := []struct {
		level    xcglogger.Level
		priority string
	}{
		{xcglogger.VerboseLevel, "<15>"},
		{xcglogger.DebugLevel, "<15>"},
		{xcglogger.InfoLevel, "<14>"},
		{xcglogger.NoticeLevel, "<13>"},
		{xcglogger.WarningLevel, "<12>"},
		{xcglogger.ErrorLevel, "<11>"},
		{xcglogger.SevereLevel, "<10>"},
		{xcglogger.AlertLevel, "<9>"},
		{xcglogger.EmergencyLevel, "<8>"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			logger.Log(tt.level, "hello")

			packet := readPacket(t, conn)
			assert.True(t, strings.HasPrefix(packet, tt.priority), packet)
			assert.Contains(t, packet, "xcgtest")
			assert.Contains(t, packet, "["+tt.level.String()+"] > hello")
		})
	}

	require.NoError(t, logger.Close())
}

func TestSyslogDefaultsOmitDate(t *testing.T) {
	conn := listenUDP(t)

	dest, err := NewSyslog("xcgtest", SyslogOptions{Network: "udp", Address: conn.LocalAddr().String()})
	require.NoError(t, err)

	opts := dest.Options()
	assert.Equal(t, "xcglogger.destination.syslog", opts.Identifier)
	assert.False(t, opts.ShowDate)
	assert.True(t, opts.ShowLevel)

	require.NoError(t, dest.Close())
	require.NoError(t, dest.Close())
}

func TestSyslogUnknownFacility(t *testing.T) {
	_, err := NewSyslog("xcgtest", SyslogOptions{Facility: "printer", Network: "udp", Address: "127.0.0.1:1"})
	require.Error(t, err)
}
