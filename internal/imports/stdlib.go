package imports

// stdlibNames is the bundled interpreter standard-library set, used
// when no resolver overrides the answer.
var stdlibNames = setOf(
	"abc", "argparse", "array", "ast", "asyncio", "atexit", "base64",
	"bisect", "builtins", "bz2", "calendar", "cmath", "codecs",
	"collections", "concurrent", "configparser", "contextlib", "copy",
	"csv", "ctypes", "dataclasses", "datetime", "decimal", "difflib",
	"dis", "email", "enum", "errno", "fnmatch", "fractions", "functools",
	"gc", "getpass", "gettext", "glob", "gzip", "hashlib", "heapq",
	"hmac", "html", "http", "importlib", "inspect", "io", "ipaddress",
	"itertools", "json", "keyword", "linecache", "locale", "logging",
	"lzma", "math", "mimetypes", "multiprocessing", "operator", "os",
	"pathlib", "pickle", "platform", "pprint", "queue", "random", "re",
	"sched", "secrets", "select", "shlex", "shutil", "signal", "site",
	"socket", "socketserver", "sqlite3", "ssl", "stat", "statistics",
	"string", "struct", "subprocess", "sys", "sysconfig", "tarfile",
	"tempfile", "textwrap", "threading", "time", "timeit", "token",
	"tokenize", "traceback", "types", "typing", "unicodedata", "unittest",
	"urllib", "uuid", "venv", "warnings", "weakref", "xml", "zipfile",
	"zlib", "zoneinfo",
)

// builtinNames mirrors the interpreter's builtin namespace; a root
// shadowing one of these is treated as stdlib, matching the observed
// classification order.
var builtinNames = setOf(
	"abs", "aiter", "all", "anext", "any", "ascii", "bin", "bool",
	"breakpoint", "bytearray", "bytes", "callable", "chr", "classmethod",
	"compile", "complex", "delattr", "dict", "dir", "divmod", "enumerate",
	"eval", "exec", "filter", "float", "format", "frozenset", "getattr",
	"globals", "hasattr", "hash", "help", "hex", "id", "input", "int",
	"isinstance", "issubclass", "iter", "len", "list", "locals", "map",
	"max", "memoryview", "min", "next", "object", "oct", "open", "ord",
	"pow", "print", "property", "range", "repr", "reversed", "round",
	"set", "setattr", "slice", "sorted", "staticmethod", "str", "sum",
	"super", "tuple", "type", "vars", "zip",
)

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
