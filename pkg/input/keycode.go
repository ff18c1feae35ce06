package input

// Keycode is a portable virtual keycode. Values are platform independent;
// the tables in internal/keycode map them to and from native key numbers.
type Keycode uint16

// VcUndefined is returned when a native key has no portable equivalent.
// CharUndefined marks a key event that resolved to no character.
const (
	VcUndefined   Keycode = 0x0000
	CharUndefined rune    = 0xFFFF
)

const (
	VcEscape Keycode = 0x001B

	// Function keys.
	VcF1  Keycode = 0x0070
	VcF2  Keycode = 0x0071
	VcF3  Keycode = 0x0072
	VcF4  Keycode = 0x0073
	VcF5  Keycode = 0x0074
	VcF6  Keycode = 0x0075
	VcF7  Keycode = 0x0076
	VcF8  Keycode = 0x0077
	VcF9  Keycode = 0x0078
	VcF10 Keycode = 0x0079
	VcF11 Keycode = 0x007A
	VcF12 Keycode = 0x007B

	VcF13 Keycode = 0xF000
	VcF14 Keycode = 0xF001
	VcF15 Keycode = 0xF002
	VcF16 Keycode = 0xF003
	VcF17 Keycode = 0xF004
	VcF18 Keycode = 0xF005
	VcF19 Keycode = 0xF006
	VcF20 Keycode = 0xF007
	VcF21 Keycode = 0xF008
	VcF22 Keycode = 0xF009
	VcF23 Keycode = 0xF00A
	VcF24 Keycode = 0xF00B

	// Alphanumeric zone.
	VcBackQuote Keycode = 0x00C0

	Vc0 Keycode = 0x0030
	Vc1 Keycode = 0x0031
	Vc2 Keycode = 0x0032
	Vc3 Keycode = 0x0033
	Vc4 Keycode = 0x0034
	Vc5 Keycode = 0x0035
	Vc6 Keycode = 0x0036
	Vc7 Keycode = 0x0037
	Vc8 Keycode = 0x0038
	Vc9 Keycode = 0x0039

	VcMinus  Keycode = 0x002D
	VcEquals Keycode = 0x003D

	VcBackspace Keycode = 0x0008
	VcTab       Keycode = 0x0009
	VcCapsLock  Keycode = 0x0014

	VcA Keycode = 0x0041
	VcB Keycode = 0x0042
	VcC Keycode = 0x0043
	VcD Keycode = 0x0044
	VcE Keycode = 0x0045
	VcF Keycode = 0x0046
	VcG Keycode = 0x0047
	VcH Keycode = 0x0048
	VcI Keycode = 0x0049
	VcJ Keycode = 0x004A
	VcK Keycode = 0x004B
	VcL Keycode = 0x004C
	VcM Keycode = 0x004D
	VcN Keycode = 0x004E
	VcO Keycode = 0x004F
	VcP Keycode = 0x0050
	VcQ Keycode = 0x0051
	VcR Keycode = 0x0052
	VcS Keycode = 0x0053
	VcT Keycode = 0x0054
	VcU Keycode = 0x0055
	VcV Keycode = 0x0056
	VcW Keycode = 0x0057
	VcX Keycode = 0x0058
	VcY Keycode = 0x0059
	VcZ Keycode = 0x005A

	VcOpenBracket  Keycode = 0x005B
	VcCloseBracket Keycode = 0x005C
	VcBackSlash    Keycode = 0x005D

	VcSemicolon Keycode = 0x003B
	VcQuote     Keycode = 0x00DE
	VcEnter     Keycode = 0x000A

	VcComma  Keycode = 0x002C
	VcPeriod Keycode = 0x002E
	VcSlash  Keycode = 0x002F

	VcSpace Keycode = 0x0020

	Vc102  Keycode = 0x0099 // extra key on 102-key international layouts
	VcMisc Keycode = 0x0E01

	// Edit key zone.
	VcPrintScreen Keycode = 0x009A
	VcPrint       Keycode = 0x009C
	VcSelect      Keycode = 0x009D
	VcExecute     Keycode = 0x009E
	VcScrollLock  Keycode = 0x0091
	VcPause       Keycode = 0x0013
	VcCancel      Keycode = 0x00D3
	VcHelp        Keycode = 0x009F

	VcInsert   Keycode = 0x009B
	VcDelete   Keycode = 0x007F
	VcHome     Keycode = 0x0024
	VcEnd      Keycode = 0x0023
	VcPageUp   Keycode = 0x0021
	VcPageDown Keycode = 0x0022

	// Cursor keys.
	VcUp    Keycode = 0x0026
	VcLeft  Keycode = 0x0025
	VcRight Keycode = 0x0027
	VcDown  Keycode = 0x0028

	// Numeric keypad.
	VcNumLock Keycode = 0x0090

	VcKpClear     Keycode = 0x000C
	VcKpDivide    Keycode = 0x006F
	VcKpMultiply  Keycode = 0x006A
	VcKpSubtract  Keycode = 0x006D
	VcKpEquals    Keycode = 0x007C
	VcKpAdd       Keycode = 0x006B
	VcKpEnter     Keycode = 0x007D
	VcKpDecimal   Keycode = 0x006E
	VcKpSeparator Keycode = 0x006C
	VcKpPlusMinus Keycode = 0x007E

	VcKp0 Keycode = 0x0060
	VcKp1 Keycode = 0x0061
	VcKp2 Keycode = 0x0062
	VcKp3 Keycode = 0x0063
	VcKp4 Keycode = 0x0064
	VcKp5 Keycode = 0x0065
	VcKp6 Keycode = 0x0066
	VcKp7 Keycode = 0x0067
	VcKp8 Keycode = 0x0068
	VcKp9 Keycode = 0x0069

	VcKpOpenParenthesis  Keycode = 0xEE01
	VcKpCloseParenthesis Keycode = 0xEE02

	// Modifier and control keys.
	VcShiftL            Keycode = 0xA010
	VcShiftR            Keycode = 0xB010
	VcControlL          Keycode = 0xA011
	VcControlR          Keycode = 0xB011
	VcAltL              Keycode = 0xA012
	VcAltR              Keycode = 0xB012
	VcMetaL             Keycode = 0xA09D
	VcMetaR             Keycode = 0xB09D
	VcContextMenu       Keycode = 0x020D
	VcFunction          Keycode = 0x020E // macOS only
	VcChangeInputSource Keycode = 0x020F // macOS only

	// Shortcut keys.
	VcPower Keycode = 0xE05E
	VcSleep Keycode = 0xE05F
	VcWake  Keycode = 0xE063

	VcMedia           Keycode = 0xE023
	VcMediaPlay       Keycode = 0xE022
	VcMediaStop       Keycode = 0xE024
	VcMediaPrevious   Keycode = 0xE010
	VcMediaNext       Keycode = 0xE019
	VcMediaSelect     Keycode = 0xE06D
	VcMediaEject      Keycode = 0xE02C
	VcMediaClose      Keycode = 0xE02D
	VcMediaEjectClose Keycode = 0xE02F
	VcMediaRecord     Keycode = 0xE031
	VcMediaRewind     Keycode = 0xE033

	VcVolumeMute Keycode = 0xE020
	VcVolumeDown Keycode = 0xE030
	VcVolumeUp   Keycode = 0xE02E

	VcAttn     Keycode = 0xE090
	VcCrSel    Keycode = 0xE091
	VcExSel    Keycode = 0xE092
	VcEraseEOF Keycode = 0xE093
	VcPlay     Keycode = 0xE094
	VcZoom     Keycode = 0xE095
	VcNoName   Keycode = 0xE096
	VcPa1      Keycode = 0xE097

	VcApp1          Keycode = 0xE026
	VcApp2          Keycode = 0xE027
	VcApp3          Keycode = 0xE028
	VcApp4          Keycode = 0xE029
	VcAppBrowser    Keycode = 0xE025
	VcAppCalculator Keycode = 0xE021
	VcAppMail       Keycode = 0xE06C

	VcBrowserSearch    Keycode = 0xE065
	VcBrowserHome      Keycode = 0xE032
	VcBrowserBack      Keycode = 0xE06A
	VcBrowserForward   Keycode = 0xE069
	VcBrowserStop      Keycode = 0xE068
	VcBrowserRefresh   Keycode = 0xE067
	VcBrowserFavorites Keycode = 0xE066

	// Asian language keys.
	VcKatakanaHiragana Keycode = 0x0106
	VcKatakana         Keycode = 0x00F1
	VcHiragana         Keycode = 0x00F2
	VcKana             Keycode = 0x0015
	VcKanji            Keycode = 0x0019
	VcHangul           Keycode = 0x00E9
	VcJunja            Keycode = 0x00E8
	VcFinal            Keycode = 0x00E7
	VcHanja            Keycode = 0x00E6

	VcAccept     Keycode = 0x001E
	VcConvert    Keycode = 0x001C
	VcNonConvert Keycode = 0x001D
	VcImeOn      Keycode = 0x0109
	VcImeOff     Keycode = 0x0108
	VcModeChange Keycode = 0x0107
	VcProcess    Keycode = 0x0105

	VcAlphanumeric Keycode = 0x00F0
	VcUnderscore   Keycode = 0x020B
	VcYen          Keycode = 0x020C
	VcJpComma      Keycode = 0x0210

	// Extended keys found on Linux keyboards.
	VcStop  Keycode = 0xFF78
	VcProps Keycode = 0xFF76
	VcFront Keycode = 0xFF77
	VcOpen  Keycode = 0xFF74
	VcFind  Keycode = 0xFF70
	VcAgain Keycode = 0xFF79
	VcUndo  Keycode = 0xFF7A
	VcRedo  Keycode = 0xFF7F
	VcCopy  Keycode = 0xFF7C
	VcPaste Keycode = 0xFF7D
	VcCut   Keycode = 0xFF7B

	VcLineFeed            Keycode = 0xC001
	VcMacro               Keycode = 0xC002
	VcScale               Keycode = 0xC003
	VcSetup               Keycode = 0xC004
	VcFile                Keycode = 0xC005
	VcSendFile            Keycode = 0xC006
	VcDeleteFile          Keycode = 0xC007
	VcMsDos               Keycode = 0xC008
	VcLock                Keycode = 0xC009
	VcRotateDisplay       Keycode = 0xC00A
	VcCycleWindows        Keycode = 0xC00B
	VcComputer            Keycode = 0xC00C
	VcPhone               Keycode = 0xC00D
	VcIso                 Keycode = 0xC00E
	VcConfig              Keycode = 0xC00F
	VcExit                Keycode = 0xC010
	VcMove                Keycode = 0xC011
	VcEdit                Keycode = 0xC012
	VcScrollUp            Keycode = 0xC013
	VcScrollDown          Keycode = 0xC014
	VcNew                 Keycode = 0xC015
	VcPlayCD              Keycode = 0xC016
	VcPauseCD             Keycode = 0xC017
	VcDashboard           Keycode = 0xC018
	VcSuspend             Keycode = 0xC019
	VcClose               Keycode = 0xC01A
	VcFastForward         Keycode = 0xC01C
	VcBassBoost           Keycode = 0xC01D
	VcHp                  Keycode = 0xC01E
	VcCamera              Keycode = 0xC01F
	VcSound               Keycode = 0xC020
	VcQuestion            Keycode = 0xC021
	VcEmail               Keycode = 0xC022
	VcChat                Keycode = 0xC023
	VcConnect             Keycode = 0xC024
	VcFinance             Keycode = 0xC025
	VcSport               Keycode = 0xC026
	VcShop                Keycode = 0xC027
	VcAltErase            Keycode = 0xC028
	VcBrightnessDown      Keycode = 0xC029
	VcBrightnessUp        Keycode = 0xC02A
	VcBrightnessCycle     Keycode = 0xC02B
	VcBrightnessAuto      Keycode = 0xC02C
	VcSwitchVideoMode     Keycode = 0xC02D
	VcKeyboardLightToggle Keycode = 0xC02E
	VcKeyboardLightDown   Keycode = 0xC02F
	VcKeyboardLightUp     Keycode = 0xC030
	VcSend                Keycode = 0xC031
	VcReply               Keycode = 0xC032
	VcForwardMail         Keycode = 0xC033
	VcSave                Keycode = 0xC034
	VcDocuments           Keycode = 0xC035
	VcBattery             Keycode = 0xC036
	VcBluetooth           Keycode = 0xC037
	VcWlan                Keycode = 0xC038
	VcUwb                 Keycode = 0xC039
	VcX11Unknown          Keycode = 0xC03A
	VcVideoNext           Keycode = 0xC03B
	VcVideoPrevious       Keycode = 0xC03C
	VcDisplayOff          Keycode = 0xC03D
	VcWwan                Keycode = 0xC03E
	VcRfKill              Keycode = 0xC03F
)
