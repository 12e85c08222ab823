package vdg

// Frame buffer palette indices.
const (
	fbBlack = iota
	fbBlue
	fbGreen
	fbCyan
	fbRed
	fbMagenta
	fbBrown
	fbGray
	fbDarkGray
	fbLightBlue
	fbLightGreen
	fbLightCyan
	fbLightRed
	fbLightMagenta
	fbYellow
	fbWhite
)

// paletteBGR is the fixed 16-entry palette published to the display
// provider at initialisation, each entry blue-green-red.
var paletteBGR = [16][3]uint8{
	fbBlack:        {0x00, 0x00, 0x00},
	fbBlue:         {0x80, 0x00, 0x00},
	fbGreen:        {0x00, 0x80, 0x00},
	fbCyan:         {0x80, 0x80, 0x00},
	fbRed:          {0x00, 0x00, 0x80},
	fbMagenta:      {0x80, 0x00, 0x80},
	fbBrown:        {0x00, 0xa5, 0xff},
	fbGray:         {0xc0, 0xc0, 0xc0},
	fbDarkGray:     {0x80, 0x80, 0x80},
	fbLightBlue:    {0xff, 0x00, 0x00},
	fbLightGreen:   {0x00, 0xff, 0x00},
	fbLightCyan:    {0xff, 0xff, 0x00},
	fbLightRed:     {0x00, 0x00, 0xff},
	fbLightMagenta: {0xff, 0x00, 0xff},
	fbYellow:       {0x00, 0xff, 0xff},
	fbWhite:        {0xff, 0xff, 0xff},
}

// colorSet maps the VDG's eight-colour selection (the three luminance
// bits, plus four for the alternate colour set) to palette indices. White
// stands in for the VDG's buff.
var colorSet = [8]uint8{
	fbLightGreen,
	fbYellow,
	fbLightBlue,
	fbLightRed,
	fbWhite,
	fbCyan,
	fbLightMagenta,
	fbBrown,
}

const (
	defColorCSS0 = 0 // green
	defColorCSS1 = 4 // buff/white
)
