package hook

// System input properties, reported in platform-native units:
//
//   - AutoRepeatRate: windows SPI_GETKEYBOARDSPEED setting (0..31),
//     darwin KeyRepeat preference ticks, x11 repeat interval in ms.
//   - AutoRepeatDelay: milliseconds before the first repeat.
//   - PointerAcceleration / PointerSensitivity: the raw platform
//     acceleration multiplier, threshold and speed settings.
//
// The second return is false when the platform does not expose the
// setting. MultiClickTime always has a value; 500ms when unknown.
