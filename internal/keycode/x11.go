package keycode

import "inputtap/pkg/input"

// X11Row binds a portable keycode to a symbolic xkb key name. The runtime
// keycode column starts at zero and is filled in once from the server's
// name map, because physical keycodes differ between X servers.
type X11Row struct {
	Vc   input.Keycode
	Name string
	Code uint8
}

// X11Table resolves between portable keycodes and the runtime keycodes of
// one X server. Until Load runs, every lookup misses.
type X11Table struct {
	rows   []X11Row
	loaded bool
}

// NewX11Table returns a table with its own copy of the name rows.
func NewX11Table() *X11Table {
	rows := make([]X11Row, len(x11Rows))
	copy(rows, x11Rows)
	return &X11Table{rows: rows}
}

// Load fills the runtime keycode column. resolve maps a symbolic key name
// to the server keycode, returning 0 for names the server does not define;
// rows that stay 0 never match. Load is a one-shot, later calls are no-ops.
func (t *X11Table) Load(resolve func(name string) uint8) {
	if t.loaded {
		return
	}
	for i := range t.rows {
		t.rows[i].Code = resolve(t.rows[i].Name)
	}
	t.loaded = true
}

// Loaded reports whether the runtime column has been populated.
func (t *X11Table) Loaded() bool { return t.loaded }

// ToVcode returns the portable keycode for a server keycode, or VcUndefined.
func (t *X11Table) ToVcode(code uint8) input.Keycode {
	if code == 0 {
		return input.VcUndefined
	}
	for i := range t.rows {
		if t.rows[i].Code == code {
			return t.rows[i].Vc
		}
	}
	return input.VcUndefined
}

// ToNative returns the server keycode for a portable keycode. ok is false
// when the table is unloaded or the server has no key under any of the
// code's names.
func (t *X11Table) ToNative(vc input.Keycode) (code uint8, ok bool) {
	for i := range t.rows {
		if t.rows[i].Vc == vc && t.rows[i].Code != 0 {
			return t.rows[i].Code, true
		}
	}
	return 0, false
}

// Rows returns the table's rows for table-driven tests.
func (t *X11Table) Rows() []X11Row { return t.rows }

// The xkb geometry names cover the main block (AE/AD/AC/AB rows), function
// keys (FKnn) and the legacy I1xx range used by extended media keys. Some
// portable codes carry several names because keyboards disagree on which
// name the key is wired to; first loaded name wins.
var x11Rows = []X11Row{
	{Vc: input.VcEscape, Name: "ESC"},
	{Vc: input.VcF1, Name: "FK01"},
	{Vc: input.VcF2, Name: "FK02"},
	{Vc: input.VcF3, Name: "FK03"},
	{Vc: input.VcF4, Name: "FK04"},
	{Vc: input.VcF5, Name: "FK05"},
	{Vc: input.VcF6, Name: "FK06"},
	{Vc: input.VcF7, Name: "FK07"},
	{Vc: input.VcF8, Name: "FK08"},
	{Vc: input.VcF9, Name: "FK09"},
	{Vc: input.VcF10, Name: "FK10"},
	{Vc: input.VcF11, Name: "FK11"},
	{Vc: input.VcF12, Name: "FK12"},
	{Vc: input.VcF13, Name: "FK13"},
	{Vc: input.VcF14, Name: "FK14"},
	{Vc: input.VcF15, Name: "FK15"},
	{Vc: input.VcF16, Name: "FK16"},
	{Vc: input.VcF17, Name: "FK17"},
	{Vc: input.VcF18, Name: "FK18"},
	{Vc: input.VcF19, Name: "FK19"},
	{Vc: input.VcF20, Name: "FK20"},
	{Vc: input.VcF21, Name: "FK21"},
	{Vc: input.VcF22, Name: "FK22"},
	{Vc: input.VcF23, Name: "FK23"},
	{Vc: input.VcF24, Name: "FK24"},
	{Vc: input.VcBackQuote, Name: "TLDE"},
	{Vc: input.Vc1, Name: "AE01"},
	{Vc: input.Vc2, Name: "AE02"},
	{Vc: input.Vc3, Name: "AE03"},
	{Vc: input.Vc4, Name: "AE04"},
	{Vc: input.Vc5, Name: "AE05"},
	{Vc: input.Vc6, Name: "AE06"},
	{Vc: input.Vc7, Name: "AE07"},
	{Vc: input.Vc8, Name: "AE08"},
	{Vc: input.Vc9, Name: "AE09"},
	{Vc: input.Vc0, Name: "AE10"},
	{Vc: input.VcMinus, Name: "AE11"},
	{Vc: input.VcEquals, Name: "AE12"},
	{Vc: input.VcBackspace, Name: "BKSP"},
	{Vc: input.VcTab, Name: "TAB"},
	{Vc: input.VcQ, Name: "AD01"},
	{Vc: input.VcW, Name: "AD02"},
	{Vc: input.VcE, Name: "AD03"},
	{Vc: input.VcR, Name: "AD04"},
	{Vc: input.VcT, Name: "AD05"},
	{Vc: input.VcY, Name: "AD06"},
	{Vc: input.VcU, Name: "AD07"},
	{Vc: input.VcI, Name: "AD08"},
	{Vc: input.VcO, Name: "AD09"},
	{Vc: input.VcP, Name: "AD10"},
	{Vc: input.VcOpenBracket, Name: "AD11"},
	{Vc: input.VcCloseBracket, Name: "AD12"},
	{Vc: input.VcEnter, Name: "RTRN"},
	{Vc: input.VcCapsLock, Name: "CAPS"},
	{Vc: input.VcA, Name: "AC01"},
	{Vc: input.VcS, Name: "AC02"},
	{Vc: input.VcD, Name: "AC03"},
	{Vc: input.VcF, Name: "AC04"},
	{Vc: input.VcG, Name: "AC05"},
	{Vc: input.VcH, Name: "AC06"},
	{Vc: input.VcJ, Name: "AC07"},
	{Vc: input.VcK, Name: "AC08"},
	{Vc: input.VcL, Name: "AC09"},
	{Vc: input.VcSemicolon, Name: "AC10"},
	{Vc: input.VcQuote, Name: "AC11"},
	{Vc: input.VcBackSlash, Name: "AC12"},
	{Vc: input.VcBackSlash, Name: "BKSL"},
	{Vc: input.VcShiftL, Name: "LFSH"},
	{Vc: input.VcZ, Name: "AB01"},
	{Vc: input.VcX, Name: "AB02"},
	{Vc: input.VcC, Name: "AB03"},
	{Vc: input.VcV, Name: "AB04"},
	{Vc: input.VcB, Name: "AB05"},
	{Vc: input.VcN, Name: "AB06"},
	{Vc: input.VcM, Name: "AB07"},
	{Vc: input.VcComma, Name: "AB08"},
	{Vc: input.VcPeriod, Name: "AB09"},
	{Vc: input.VcSlash, Name: "AB10"},
	{Vc: input.VcShiftR, Name: "RTSH"},
	{Vc: input.Vc102, Name: "LSGT"},
	{Vc: input.VcAltL, Name: "LALT"},
	{Vc: input.VcControlL, Name: "LCTL"},
	{Vc: input.VcMetaL, Name: "LWIN"},
	{Vc: input.VcMetaL, Name: "LMTA"},
	{Vc: input.VcSpace, Name: "SPCE"},
	{Vc: input.VcMetaR, Name: "RWIN"},
	{Vc: input.VcMetaR, Name: "RMTA"},
	{Vc: input.VcControlR, Name: "RCTL"},
	{Vc: input.VcAltR, Name: "RALT"},
	{Vc: input.VcContextMenu, Name: "COMP"},
	{Vc: input.VcContextMenu, Name: "MENU"},
	{Vc: input.VcPrintScreen, Name: "PRSC"},
	{Vc: input.VcScrollLock, Name: "SCLK"},
	{Vc: input.VcPause, Name: "PAUS"},
	{Vc: input.VcInsert, Name: "INS"},
	{Vc: input.VcHome, Name: "HOME"},
	{Vc: input.VcPageUp, Name: "PGUP"},
	{Vc: input.VcDelete, Name: "DELE"},
	{Vc: input.VcEnd, Name: "END"},
	{Vc: input.VcPageDown, Name: "PGDN"},
	{Vc: input.VcUp, Name: "UP"},
	{Vc: input.VcLeft, Name: "LEFT"},
	{Vc: input.VcDown, Name: "DOWN"},
	{Vc: input.VcRight, Name: "RGHT"},
	{Vc: input.VcNumLock, Name: "NMLK"},
	{Vc: input.VcKpDivide, Name: "KPDV"},
	{Vc: input.VcKpMultiply, Name: "KPMU"},
	{Vc: input.VcKpSubtract, Name: "KPSU"},
	{Vc: input.VcKp7, Name: "KP7"},
	{Vc: input.VcKp8, Name: "KP8"},
	{Vc: input.VcKp9, Name: "KP9"},
	{Vc: input.VcKpAdd, Name: "KPAD"},
	{Vc: input.VcKp4, Name: "KP4"},
	{Vc: input.VcKp5, Name: "KP5"},
	{Vc: input.VcKp6, Name: "KP6"},
	{Vc: input.VcKp1, Name: "KP1"},
	{Vc: input.VcKp2, Name: "KP2"},
	{Vc: input.VcKp3, Name: "KP3"},
	{Vc: input.VcKpEnter, Name: "KPEN"},
	{Vc: input.VcKp0, Name: "KP0"},
	{Vc: input.VcKpDecimal, Name: "KPDL"},
	{Vc: input.VcKpEquals, Name: "KPEQ"},
	{Vc: input.VcKatakanaHiragana, Name: "HKTG"},
	{Vc: input.VcUnderscore, Name: "AB11"},
	{Vc: input.VcConvert, Name: "HENK"},
	{Vc: input.VcNonConvert, Name: "MUHE"},
	{Vc: input.VcYen, Name: "AE13"},
	{Vc: input.VcKatakana, Name: "KATA"},
	{Vc: input.VcHiragana, Name: "HIRA"},
	{Vc: input.VcJpComma, Name: "JPCM"},
	{Vc: input.VcHangul, Name: "HNGL"},
	{Vc: input.VcHanja, Name: "HJCV"},
	{Vc: input.VcVolumeMute, Name: "MUTE"},
	{Vc: input.VcVolumeDown, Name: "VOL-"},
	{Vc: input.VcVolumeUp, Name: "VOL+"},
	{Vc: input.VcPower, Name: "POWR"},
	{Vc: input.VcStop, Name: "STOP"},
	{Vc: input.VcAgain, Name: "AGAI"},
	{Vc: input.VcProps, Name: "PROP"},
	{Vc: input.VcUndo, Name: "UNDO"},
	{Vc: input.VcFront, Name: "FRNT"},
	{Vc: input.VcCopy, Name: "COPY"},
	{Vc: input.VcOpen, Name: "OPEN"},
	{Vc: input.VcPaste, Name: "PAST"},
	{Vc: input.VcFind, Name: "FIND"},
	{Vc: input.VcCut, Name: "CUT"},
	{Vc: input.VcHelp, Name: "HELP"},
	{Vc: input.VcSwitchVideoMode, Name: "OUTP"},
	{Vc: input.VcKeyboardLightToggle, Name: "KITG"},
	{Vc: input.VcKeyboardLightDown, Name: "KIDN"},
	{Vc: input.VcKeyboardLightUp, Name: "KIUP"},
	{Vc: input.VcLineFeed, Name: "LNFD"},
	{Vc: input.VcMacro, Name: "I120"},
	{Vc: input.VcVolumeMute, Name: "I121"},
	{Vc: input.VcVolumeDown, Name: "I122"},
	{Vc: input.VcVolumeUp, Name: "I123"},
	{Vc: input.VcPower, Name: "I124"},
	{Vc: input.VcKpEquals, Name: "I125"},
	{Vc: input.VcKpPlusMinus, Name: "I126"},
	{Vc: input.VcPause, Name: "I127"},
	{Vc: input.VcScale, Name: "I128"},
	{Vc: input.VcKpSeparator, Name: "I129"},
	{Vc: input.VcHangul, Name: "I130"},
	{Vc: input.VcHanja, Name: "I131"},
	{Vc: input.VcYen, Name: "I132"},
	{Vc: input.VcMetaL, Name: "I133"},
	{Vc: input.VcMetaR, Name: "I134"},
	{Vc: input.VcContextMenu, Name: "I135"},
	{Vc: input.VcStop, Name: "I136"},
	{Vc: input.VcAgain, Name: "I137"},
	{Vc: input.VcProps, Name: "I138"},
	{Vc: input.VcUndo, Name: "I139"},
	{Vc: input.VcFront, Name: "I140"},
	{Vc: input.VcCopy, Name: "I141"},
	{Vc: input.VcOpen, Name: "I142"},
	{Vc: input.VcPaste, Name: "I143"},
	{Vc: input.VcFind, Name: "I144"},
	{Vc: input.VcCut, Name: "I145"},
	{Vc: input.VcHelp, Name: "I146"},
	{Vc: input.VcContextMenu, Name: "I147"},
	{Vc: input.VcAppCalculator, Name: "I148"},
	{Vc: input.VcSetup, Name: "I149"},
	{Vc: input.VcSleep, Name: "I150"},
	{Vc: input.VcWake, Name: "I151"},
	{Vc: input.VcFile, Name: "I152"},
	{Vc: input.VcSendFile, Name: "I153"},
	{Vc: input.VcDeleteFile, Name: "I154"},
	{Vc: input.VcModeChange, Name: "I155"},
	{Vc: input.VcApp1, Name: "I156"},
	{Vc: input.VcApp2, Name: "I157"},
	{Vc: input.VcAppBrowser, Name: "I158"},
	{Vc: input.VcMsDos, Name: "I159"},
	{Vc: input.VcLock, Name: "I160"},
	{Vc: input.VcRotateDisplay, Name: "I161"},
	{Vc: input.VcCycleWindows, Name: "I162"},
	{Vc: input.VcAppMail, Name: "I163"},
	{Vc: input.VcBrowserFavorites, Name: "I164"},
	{Vc: input.VcComputer, Name: "I165"},
	{Vc: input.VcBrowserBack, Name: "I166"},
	{Vc: input.VcBrowserForward, Name: "I167"},
	{Vc: input.VcMediaClose, Name: "I168"},
	{Vc: input.VcMediaEject, Name: "I169"},
	{Vc: input.VcMediaEjectClose, Name: "I170"},
	{Vc: input.VcMediaNext, Name: "I171"},
	{Vc: input.VcMediaPlay, Name: "I172"},
	{Vc: input.VcMediaPrevious, Name: "I173"},
	{Vc: input.VcMediaStop, Name: "I174"},
	{Vc: input.VcMediaRecord, Name: "I175"},
	{Vc: input.VcMediaRewind, Name: "I176"},
	{Vc: input.VcPhone, Name: "I177"},
	{Vc: input.VcIso, Name: "I178"},
	{Vc: input.VcConfig, Name: "I179"},
	{Vc: input.VcBrowserHome, Name: "I180"},
	{Vc: input.VcBrowserRefresh, Name: "I181"},
	{Vc: input.VcExit, Name: "I182"},
	{Vc: input.VcMove, Name: "I183"},
	{Vc: input.VcEdit, Name: "I184"},
	{Vc: input.VcScrollUp, Name: "I185"},
	{Vc: input.VcScrollDown, Name: "I186"},
	{Vc: input.VcKpOpenParenthesis, Name: "I187"},
	{Vc: input.VcKpCloseParenthesis, Name: "I188"},
	{Vc: input.VcNew, Name: "I189"},
	{Vc: input.VcRedo, Name: "I190"},
	{Vc: input.VcF13, Name: "I191"},
	{Vc: input.VcF14, Name: "I192"},
	{Vc: input.VcF15, Name: "I193"},
	{Vc: input.VcF16, Name: "I194"},
	{Vc: input.VcF17, Name: "I195"},
	{Vc: input.VcF18, Name: "I196"},
	{Vc: input.VcF19, Name: "I197"},
	{Vc: input.VcF20, Name: "I198"},
	{Vc: input.VcF21, Name: "I199"},
	{Vc: input.VcF22, Name: "I200"},
	{Vc: input.VcF23, Name: "I201"},
	{Vc: input.VcF24, Name: "I202"},
	{Vc: input.VcPlayCD, Name: "I208"},
	{Vc: input.VcPauseCD, Name: "I209"},
	{Vc: input.VcApp3, Name: "I210"},
	{Vc: input.VcApp4, Name: "I211"},
	{Vc: input.VcDashboard, Name: "I212"},
	{Vc: input.VcSuspend, Name: "I213"},
	{Vc: input.VcClose, Name: "I214"},
	{Vc: input.VcPlay, Name: "I215"},
	{Vc: input.VcFastForward, Name: "I216"},
	{Vc: input.VcBassBoost, Name: "I217"},
	{Vc: input.VcPrint, Name: "I218"},
	{Vc: input.VcHp, Name: "I219"},
	{Vc: input.VcCamera, Name: "I220"},
	{Vc: input.VcSound, Name: "I221"},
	{Vc: input.VcQuestion, Name: "I222"},
	{Vc: input.VcEmail, Name: "I223"},
	{Vc: input.VcChat, Name: "I224"},
	{Vc: input.VcBrowserSearch, Name: "I225"},
	{Vc: input.VcConnect, Name: "I226"},
	{Vc: input.VcFinance, Name: "I227"},
	{Vc: input.VcSport, Name: "I228"},
	{Vc: input.VcShop, Name: "I229"},
	{Vc: input.VcAltErase, Name: "I230"},
	{Vc: input.VcCancel, Name: "I231"},
	{Vc: input.VcBrightnessDown, Name: "I232"},
	{Vc: input.VcBrightnessUp, Name: "I233"},
	{Vc: input.VcMedia, Name: "I234"},
	{Vc: input.VcSwitchVideoMode, Name: "I235"},
	{Vc: input.VcKeyboardLightToggle, Name: "I236"},
	{Vc: input.VcKeyboardLightDown, Name: "I237"},
	{Vc: input.VcKeyboardLightUp, Name: "I238"},
	{Vc: input.VcSend, Name: "I239"},
	{Vc: input.VcReply, Name: "I240"},
	{Vc: input.VcForwardMail, Name: "I241"},
	{Vc: input.VcSave, Name: "I242"},
	{Vc: input.VcDocuments, Name: "I243"},
	{Vc: input.VcBattery, Name: "I244"},
	{Vc: input.VcBluetooth, Name: "I245"},
	{Vc: input.VcWlan, Name: "I246"},
	{Vc: input.VcUwb, Name: "I247"},
	{Vc: input.VcX11Unknown, Name: "I248"},
	{Vc: input.VcVideoNext, Name: "I249"},
	{Vc: input.VcVideoPrevious, Name: "I250"},
	{Vc: input.VcBrightnessCycle, Name: "I251"},
	{Vc: input.VcBrightnessAuto, Name: "I252"},
	{Vc: input.VcDisplayOff, Name: "I253"},
	{Vc: input.VcWwan, Name: "I254"},
	{Vc: input.VcRfKill, Name: "I255"},
}
