package pia

// The Dragon keyboard matrix.
//
//       LSB              $FF02                    MSB
//     | PB0   PB1   PB2   PB3   PB4   PB5   PB6   PB7 | <- column
// ----|-----------------------------------------------|-----------
// PA0 |   0     1     2     3     4     5     6     7 |   LSB
// PA1 |   8     9     :     ;     ,     -     .     / |
// PA2 |   @     A     B     C     D     E     F     G |
// PA3 |   H     I     J     K     L     M     N     O | $FF00
// PA4 |   P     Q     R     S     T     U     V     W |
// PA5 |   X     Y     Z    Up  Down  Left Right Space |
// PA6 | ENT   CLR   BRK   N/C   N/C   N/C   N/C  SHFT |
// PA7 | Comparator input                              |   MSB

const (
	kbdRows = 7

	// noKey marks a scan code with no matrix position
	noKey = 255

	// scanCodeF1 is one below the F1 scan code; F1..F10 occupy 59..68
	scanCodeF1 = 58
)

type scanCodeEntry struct {
	column uint8 // key's column bit cleared, all others set
	row    uint8
}

// scanCodeTable maps host scan codes to matrix positions. Indexed by the
// scan code with the break bit masked off.
var scanCodeTable = [81]scanCodeEntry{
	0:  {0xff, noKey},
	1:  {0b11111011, 6}, // Break (ESC key)
	2:  {0b11111101, 0}, // 1
	3:  {0b11111011, 0}, // 2
	4:  {0b11110111, 0}, // 3
	5:  {0b11101111, 0}, // 4
	6:  {0b11011111, 0}, // 5
	7:  {0b10111111, 0}, // 6
	8:  {0b01111111, 0}, // 7
	9:  {0b11111110, 1}, // 8
	10: {0b11111101, 1}, // 9
	11: {0b11111110, 0}, // 0
	12: {0b11011111, 1}, // -
	13: {0b11111011, 1}, // :
	14: {0b11111101, 6}, // CLEAR
	15: {0xff, noKey},
	16: {0b11111101, 4}, // Q
	17: {0b01111111, 4}, // W
	18: {0b11011111, 2}, // E
	19: {0b11111011, 4}, // R
	20: {0b11101111, 4}, // T
	21: {0b11111101, 5}, // Y
	22: {0b11011111, 4}, // U
	23: {0b11111101, 3}, // I
	24: {0b01111111, 3}, // O
	25: {0b11111110, 4}, // P
	26: {0b11111110, 2}, // @
	27: {0xff, noKey},
	28: {0b11111110, 6}, // Enter
	29: {0xff, noKey},
	30: {0b11111101, 2}, // A
	31: {0b11110111, 4}, // S
	32: {0b11101111, 2}, // D
	33: {0b10111111, 2}, // F
	34: {0b01111111, 2}, // G
	35: {0b11111110, 3}, // H
	36: {0b11111011, 3}, // J
	37: {0b11110111, 3}, // K
	38: {0b11101111, 3}, // L
	39: {0b11110111, 1}, // ;
	40: {0xff, noKey},
	41: {0xff, noKey},
	42: {0b01111111, 6}, // Shift
	43: {0xff, noKey},
	44: {0b11111011, 5}, // Z
	45: {0b11111110, 5}, // X
	46: {0b11110111, 2}, // C
	47: {0b10111111, 4}, // V
	48: {0b11111011, 2}, // B
	49: {0b10111111, 3}, // N
	50: {0b11011111, 3}, // M
	51: {0b11101111, 1}, // ,
	52: {0b10111111, 1}, // .
	53: {0b01111111, 1}, // /
	54: {0xff, noKey},
	55: {0xff, noKey},
	56: {0xff, noKey},
	57: {0b01111111, 5}, // Space
	58: {0xff, noKey},
	59: {0xff, noKey}, // F1 (latched as emulator escape, not a matrix key)
	60: {0xff, noKey}, // F2
	61: {0xff, noKey}, // F3
	62: {0xff, noKey}, // F4
	63: {0xff, noKey}, // F5
	64: {0xff, noKey}, // F6
	65: {0xff, noKey}, // F7
	66: {0xff, noKey}, // F8
	67: {0xff, noKey}, // F9
	68: {0xff, noKey}, // F10
	69: {0xff, noKey},
	70: {0xff, noKey},
	71: {0xff, noKey},
	72: {0b11110111, 5}, // Up arrow
	73: {0xff, noKey},
	74: {0xff, noKey},
	75: {0b11011111, 5}, // Left arrow
	76: {0xff, noKey},
	77: {0b10111111, 5}, // Right arrow
	78: {0xff, noKey},
	79: {0xff, noKey},
	80: {0b11101111, 5}, // Down arrow
}
