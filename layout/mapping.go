// CLAUDE:SUMMARY Static type and style mapping tables between the foreign and native vocabularies.
package layout

import "fmt"

// typeMap translates foreign element type tags to the native vocabulary.
// Anything absent maps to TypeContainer — the lookup is total and cannot fail,
// which keeps the importer forward-compatible with foreign types that did not
// exist when this table was written.
var typeMap = map[string]string{
	"headline":  TypeHeading,
	"heading":   TypeHeading,
	"text":      TypeText,
	"html":      TypeText,
	"code":      TypeText,
	"quotation": TypeText,
	"button":    TypeButton,
	"image":     TypeImage,
	"icon":      TypeImage,
	"video":     TypeVideo,
}

// MapType returns the native element type for a foreign type tag.
func MapType(foreign string) string {
	if t, ok := typeMap[foreign]; ok {
		return t
	}
	return TypeContainer
}

// fontSizes maps foreign typography scale tokens to pixel font sizes.
var fontSizes = map[string]string{
	"h1":    "40px",
	"h2":    "32px",
	"h3":    "28px",
	"h4":    "24px",
	"h5":    "20px",
	"h6":    "16px",
	"lead":  "21px",
	"small": "13px",
}

const defaultFontSize = "16px"

// marginScale maps foreign margin tokens to a single pixel value applied to
// both marginTop and marginBottom.
var marginScale = map[string]string{
	"small":   "10px",
	"default": "20px",
	"large":   "40px",
}

// paddingScale maps foreign padding tokens to a uniform padding value.
var paddingScale = map[string]string{
	"small":   "15px",
	"default": "30px",
	"large":   "60px",
}

// widthFractions maps foreign fractional width tokens to CSS percentages.
var widthFractions = map[string]string{
	"1-1": "100%",
	"1-2": "50%",
	"1-3": "33.333%",
	"2-3": "66.666%",
	"1-4": "25%",
	"3-4": "75%",
	"1-5": "20%",
	"2-5": "40%",
	"3-5": "60%",
	"4-5": "80%",
	"1-6": "16.666%",
	"5-6": "83.333%",
}

const defaultWidth = "100%"

// MapStyles converts foreign presentation props into a flat native style map.
// Each recognized prop key contributes its entries through an independent
// rule; unrecognized keys are silently ignored. A style key is emitted only
// when its foreign prop is present — except text_size and width_default, whose
// fallback value applies when the prop is present but its token unrecognized.
func MapStyles(props map[string]any) map[string]string {
	styles := map[string]string{}
	if len(props) == 0 {
		return styles
	}

	if v, ok := stringProp(props, "text_size"); ok {
		size, known := fontSizes[v]
		if !known {
			size = defaultFontSize
		}
		styles["fontSize"] = size
	}
	if v, ok := stringProp(props, "text_align"); ok {
		styles["textAlign"] = v
	}
	if v, ok := stringProp(props, "color"); ok {
		styles["color"] = v
	}
	if v, ok := stringProp(props, "background"); ok {
		styles["background"] = v
	}
	if v, ok := stringProp(props, "margin"); ok {
		if px, known := marginScale[v]; known {
			styles["marginTop"] = px
			styles["marginBottom"] = px
		}
	}
	if v, ok := stringProp(props, "padding"); ok {
		if px, known := paddingScale[v]; known {
			styles["padding"] = px
		}
	}
	if v, ok := stringProp(props, "width_default"); ok {
		width, known := widthFractions[v]
		if !known {
			width = defaultWidth
		}
		styles["width"] = width
	}
	if boolProp(props, "sticky") {
		styles["position"] = "sticky"
		styles["top"] = "0"
	}

	return styles
}

// stringProp reads a prop as a string. Numbers and booleans are rendered with
// their canonical textual form so passthrough rules tolerate loosely typed
// documents; nil and absent keys report false.
func stringProp(props map[string]any, key string) (string, bool) {
	v, ok := props[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return trimFloat(t), true
	case bool:
		return fmt.Sprintf("%t", t), true
	default:
		return "", false
	}
}

// boolProp reads a prop as a flag. JSON true, the string "true" and the
// number 1 all count as set.
func boolProp(props map[string]any, key string) bool {
	switch t := props[key].(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "1"
	case float64:
		return t == 1
	default:
		return false
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
