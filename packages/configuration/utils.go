package configuration

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefineParameters registers a flag for every field of the struct that parameters points to. The default value and
// the usage are taken from the "default" and "usage" tags, the name from the "name" tag or the lower camel cased field
// name. Nested structs extend the prefix, which defaults to the name of the calling package.
func DefineParameters(parameters interface{}, optionalPrefix ...string) {
	DefineParametersOn(pflag.CommandLine, parameters, parameterPrefix(optionalPrefix))
}

// DefineParametersOn is DefineParameters for an explicit flag set.
func DefineParametersOn(flagSet *pflag.FlagSet, parameters interface{}, prefix string) {
	forEachParameter(parameters, prefix, func(name string, valueAddr interface{}, typeField reflect.StructField) {
		usage := typeField.Tag.Get("usage")
		defaultTag := typeField.Tag.Get("default")

		switch target := valueAddr.(type) {
		case *bool:
			flagSet.BoolVar(target, name, mustParse(strconv.ParseBool(defaultTag)), usage)
		case *int:
			flagSet.IntVar(target, name, mustParse(strconv.Atoi(defaultTag)), usage)
		case *int64:
			flagSet.Int64Var(target, name, mustParse(strconv.ParseInt(defaultTag, 10, 64)), usage)
		case *string:
			flagSet.StringVar(target, name, defaultTag, usage)
		case *[]string:
			flagSet.StringSliceVar(target, name, splitList(defaultTag), usage)
		default:
			panic("unsupported parameter type " + typeField.Type.String() + " for " + name)
		}
	})
}

// FillParameters copies the values that viper resolved (flags, environment and config file) into the struct that
// parameters points to. Names are derived the same way DefineParameters derives them.
func FillParameters(config *viper.Viper, parameters interface{}, prefix string) {
	forEachParameter(parameters, prefix, func(name string, valueAddr interface{}, _ reflect.StructField) {
		if !config.IsSet(name) {
			return
		}

		switch target := valueAddr.(type) {
		case *bool:
			*target = config.GetBool(name)
		case *int:
			*target = config.GetInt(name)
		case *int64:
			*target = config.GetInt64(name)
		case *string:
			*target = config.GetString(name)
		case *[]string:
			*target = config.GetStringSlice(name)
		}
	})
}

func forEachParameter(parameters interface{}, prefix string, callback func(name string, valueAddr interface{}, typeField reflect.StructField)) {
	val := reflect.ValueOf(parameters).Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		var name string
		if customName := typeField.Tag.Get("name"); customName != "" {
			name = customName
		} else {
			name = lowerCamelCase(typeField.Name)
		}
		name = prefix + "." + name

		if valueField.Kind() == reflect.Struct {
			forEachParameter(valueField.Addr().Interface(), name, callback)
			continue
		}

		callback(name, valueField.Addr().Interface(), typeField)
	}
}

func parameterPrefix(optionalPrefix []string) string {
	if len(optionalPrefix) == 0 {
		return lowerCamelCase(callerShortPackageName())
	}

	return optionalPrefix[0]
}

func mustParse[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	return strings.Split(value, ",")
}

func lowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// callerShortPackageName returns the package name of the caller of the exported function that called it.
func callerShortPackageName() string {
	pc, _, _, _ := runtime.Caller(3)
	funcName := runtime.FuncForPC(pc).Name()
	lastSlash := strings.LastIndexByte(funcName, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}
	firstDot := strings.IndexByte(funcName[lastSlash:], '.') + lastSlash

	return funcName[lastSlash+1 : firstDot]
}
