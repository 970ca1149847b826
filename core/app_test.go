package core

import (
	"errors"
	"io"
	"os"
	"testing"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"

	"github.com/oxide3d/oxide/device"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// recorder keeps the order native destroy calls were made in.
type recorder struct {
	destroys []string
}

type fakeInstance struct {
	rec *recorder
}

func (f *fakeInstance) Handle() vk.Instance  { var h vk.Instance; return h }
func (f *fakeInstance) Extensions() []string { return nil }
func (f *fakeInstance) Layers() []string     { return nil }
func (f *fakeInstance) Destroy() {
	f.rec.destroys = append(f.rec.destroys, "instance")
}

type fakeLogicalDevice struct {
	rec *recorder
}

func (f *fakeLogicalDevice) Handle() vk.Device   { var h vk.Device; return h }
func (f *fakeLogicalDevice) Queue() vk.Queue     { var q vk.Queue; return q }
func (f *fakeLogicalDevice) QueueFamily() uint32 { return 0 }
func (f *fakeLogicalDevice) Destroy() {
	f.rec.destroys = append(f.rec.destroys, "logical device")
}

type fakeDebugger struct {
	rec       *recorder
	enabled   bool
	attached  bool
	attachErr error
}

func (f *fakeDebugger) Enabled() bool { return f.enabled }

func (f *fakeDebugger) AppendExtensions(list []string) []string {
	if !f.enabled {
		return list
	}
	return append(list, DebugExtensionName)
}

func (f *fakeDebugger) AppendLayers(list []string) []string {
	if !f.enabled {
		return list
	}
	return append(list, ValidationLayerName)
}

func (f *fakeDebugger) CreateInfo() *vk.DebugReportCallbackCreateInfo { return nil }

func (f *fakeDebugger) Attach(vk.Instance) error {
	if !f.enabled {
		return nil
	}
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attached = true
	return nil
}

func (f *fakeDebugger) Detach(vk.Instance) {
	if !f.attached {
		return
	}
	f.rec.destroys = append(f.rec.destroys, "debug callback")
	f.attached = false
}

type fakeWindow struct {
	events    []Event
	destroyed bool
}

func (f *fakeWindow) RequiredExtensions() []string     { return []string{"surface_ext"} }
func (f *fakeWindow) InstanceProcAddr() unsafe.Pointer { return nil }
func (f *fakeWindow) Destroy()                         { f.destroyed = true }

func (f *fakeWindow) WaitEvent() Event {
	if len(f.events) == 0 {
		return CloseEvent{}
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func discreteRecord() device.Record {
	return device.Record{
		Name: "fake discrete",
		Type: vk.PhysicalDeviceTypeDiscreteGpu,
		QueueFamilies: []device.QueueFamily{
			{Index: 0, Flags: vk.QueueFlags(vk.QueueGraphicsBit)},
		},
	}
}

func newTestApp(rec *recorder, dbg Debugger, records []device.Record, deviceErr error) *Application {
	return &Application{
		window:   &fakeWindow{},
		debugger: dbg,
		newInstance: func(Window, Debugger) (Instance, error) {
			return &fakeInstance{rec: rec}, nil
		},
		enumerate: func(Instance) ([]device.Record, error) {
			return records, nil
		},
		newLogicalDevice: func(vk.PhysicalDevice, uint32, Debugger) (LogicalDevice, error) {
			if deviceErr != nil {
				return nil, deviceErr
			}
			return &fakeLogicalDevice{rec: rec}, nil
		},
	}
}

func TestTeardownOrderWithDiagnostics(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	app := newTestApp(rec, &fakeDebugger{rec: rec, enabled: true}, []device.Record{discreteRecord()}, nil)

	require.NoError(t, app.Init())
	app.Destroy()

	require.Equal(t, []string{"debug callback", "logical device", "instance"}, rec.destroys)
}

func TestDestroyIsIdempotent(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	app := newTestApp(rec, &fakeDebugger{rec: rec, enabled: true}, []device.Record{discreteRecord()}, nil)

	require.NoError(t, app.Init())
	app.Destroy()
	app.Destroy()

	require.Equal(t, []string{"debug callback", "logical device", "instance"}, rec.destroys)
}

func TestInitUnwindsWhenDeviceCreationFails(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	boom := errors.New("device creation failed")
	app := newTestApp(rec, &fakeDebugger{rec: rec, enabled: true}, []device.Record{discreteRecord()}, boom)

	err := app.Init()
	require.ErrorIs(t, err, boom)

	// the logical device never existed, everything before it did
	require.Equal(t, []string{"debug callback", "instance"}, rec.destroys)
}

func TestInitUnwindsWhenAttachFails(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	attachErr := errors.New("extension unavailable")
	app := newTestApp(rec, &fakeDebugger{rec: rec, enabled: true, attachErr: attachErr}, []device.Record{discreteRecord()}, nil)

	err := app.Init()
	require.ErrorIs(t, err, attachErr)
	require.Equal(t, []string{"instance"}, rec.destroys)
}

func TestInitFailsWithoutSuitableDevice(t *testing.T) {
	t.Parallel()

	integrated := device.Record{
		Type: vk.PhysicalDeviceTypeIntegratedGpu,
		QueueFamilies: []device.QueueFamily{
			{Index: 0, Flags: vk.QueueFlags(vk.QueueGraphicsBit)},
		},
	}

	rec := &recorder{}
	app := newTestApp(rec, &fakeDebugger{rec: rec, enabled: true}, []device.Record{integrated}, nil)

	err := app.Init()
	require.ErrorIs(t, err, device.ErrNoSuitableDevice)
	require.Equal(t, []string{"debug callback", "instance"}, rec.destroys)
}

func TestWindowExtensionNegotiationWithDiagnosticsDisabled(t *testing.T) {
	t.Parallel()

	win := &fakeWindow{}
	dbg := NewVulkanDebugger(false)

	require.Equal(t, []string{"surface_ext"}, InstanceExtensions(win.RequiredExtensions(), dbg))
	require.Empty(t, InstanceLayers(dbg))
}

func TestRunStopsOnFirstCloseRequest(t *testing.T) {
	t.Parallel()

	win := &fakeWindow{events: []Event{
		KeyEvent{Code: 27, Pressed: true},
		UnknownEvent{},
		CloseEvent{},
		CloseEvent{},
	}}
	app := &Application{window: win, debugger: &fakeDebugger{}}

	app.Run()

	// the loop terminated on the first close request, the second one
	// was never consumed
	require.Len(t, win.events, 1)
}
