package parser

import (
	"strconv"
	"strings"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/usage"
)

// CoerceOptionValue converts one raw token into the option's declared value
// kind. One conversion rule exists per OptionType variant; there is no
// dynamic dispatch on type names.
func CoerceOptionValue(opt *schema.OptionDefinition, raw string) (schema.Value, error) {
	switch opt.Type {
	case schema.OptionNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, usage.BadValue("--"+opt.Name, "must be a number")
		}
		return schema.NumberValue(n), nil

	case schema.OptionBool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return schema.BoolValue(true), nil
		case "false", "0", "no":
			return schema.BoolValue(false), nil
		}
		return nil, usage.BadValue("--"+opt.Name, "must be a boolean (true/false, yes/no, 1/0)")

	case schema.OptionArray:
		parts := strings.Split(raw, ",")
		arr := make(schema.ArrayValue, 0, len(parts))
		for _, p := range parts {
			arr = append(arr, strings.TrimSpace(p))
		}
		return arr, nil

	default:
		return schema.StringValue(raw), nil
	}
}
