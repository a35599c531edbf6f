package directive

// tlsVersions are the values accepted by tls-version-min and tls-version-max.
var tlsVersions = []string{"1.0", "1.1", "1.2", "1.3"}

// Default returns the table of known OpenVPN directives.
func Default() Table {
	return Table{
		"client": {Name: "client", Scope: ScopeClient},
		"remote": {Name: "remote", Required: 1,
			Args:   []ArgType{IPAddr, Int, Enum},
			Values: [][]string{nil, nil, {"udp", "tcp"}},
			Scope:  ScopeClient},
		"resolv-retry": {Name: "resolv-retry", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{{"infinite", `\d+`}},
			Scope:  ScopeClient},
		"nobind": {Name: "nobind", Scope: ScopeClient},
		"mode": {Name: "mode", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{{"p2p", "server"}}},
		"server": {Name: "server", Required: 2,
			Args:   []ArgType{IPNet, IPSubnet, Enum},
			Values: [][]string{nil, nil, {"nopool"}},
			Scope:  ScopeServer},
		"local": {Name: "local", Required: 1, Args: []ArgType{IPAddr}},
		"port":  {Name: "port", Required: 1, Args: []ArgType{Int}},
		"proto": {Name: "proto", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{{"udp", "tcp"}}},
		"dev":    {Name: "dev", Required: 1, Args: []ArgType{ASCII}},
		"ca":     {Name: "ca", Required: 1, Args: []ArgType{ASCII}},
		"cert":   {Name: "cert", Required: 1, Args: []ArgType{ASCII}},
		"key":    {Name: "key", Required: 1, Args: []ArgType{ASCII}},
		"pkcs12": {Name: "pkcs12", Required: 1, Args: []ArgType{ASCII}},
		"dh":     {Name: "dh", Required: 1, Args: []ArgType{ASCII}, Scope: ScopeServer},
		"tls-server": {Name: "tls-server", Scope: ScopeServer},
		"tls-client": {Name: "tls-client", Scope: ScopeClient},
		"tls-version-min": {Name: "tls-version-min", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{tlsVersions}},
		"tls-version-max": {Name: "tls-version-max", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{tlsVersions}},
		"remote-cert-tls": {Name: "remote-cert-tls", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{{"server", "client"}}},
		"ifconfig-pool-persist": {Name: "ifconfig-pool-persist", Required: 1,
			Args: []ArgType{ASCII}, Scope: ScopeServer},
		"ifconfig": {Name: "ifconfig", Required: 2, Args: []ArgType{IPAddr, IPAddr}},
		"push":     {Name: "push", Required: 1, Args: []ArgType{String}, Scope: ScopeServer},
		"client-config-dir": {Name: "client-config-dir", Required: 1,
			Args: []ArgType{ASCII}, Scope: ScopeServer},
		"route":        {Name: "route", Required: 1, Args: []ArgType{Route}},
		"route-metric": {Name: "route-metric", Required: 1, Args: []ArgType{Int}},
		"client-to-client": {Name: "client-to-client", Scope: ScopeServer},
		"duplicate-cn":     {Name: "duplicate-cn", Scope: ScopeServer},
		"keepalive":        {Name: "keepalive", Required: 2, Args: []ArgType{Int, Int}},
		"tls-auth": {Name: "tls-auth", Required: 1,
			Args:   []ArgType{ASCII, Enum},
			Values: [][]string{nil, {"0", "1"}}},
		"tls-crypt": {Name: "tls-crypt", Required: 1, Args: []ArgType{ASCII}},
		"cipher":    {Name: "cipher", Required: 1, Args: []ArgType{ASCII}},
		"auth":      {Name: "auth", Required: 1, Args: []ArgType{ASCII}},
		"compress": {Name: "compress", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{{"lzo", "lz4", "lz4-v2"}}},
		"comp-lzo": {Name: "comp-lzo"},
		"topology": {Name: "topology", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{{"net30", "p2p", "subnet"}},
			Scope:  ScopeServer},
		"mtu-test":    {Name: "mtu-test"},
		"tun-mtu":     {Name: "tun-mtu", Required: 1, Args: []ArgType{Int}},
		"link-mtu":    {Name: "link-mtu", Required: 1, Args: []ArgType{Int}},
		"fragment":    {Name: "fragment", Required: 1, Args: []ArgType{Int}},
		"mssfix":      {Name: "mssfix", Required: 1, Args: []ArgType{Int}},
		"sndbuf":      {Name: "sndbuf", Required: 1, Args: []ArgType{Int}},
		"rcvbuf":      {Name: "rcvbuf", Required: 1, Args: []ArgType{Int}},
		"max-clients": {Name: "max-clients", Required: 1, Args: []ArgType{Int}, Scope: ScopeServer},
		"user":        {Name: "user", Required: 1, Args: []ArgType{ASCII}},
		"group":       {Name: "group", Required: 1, Args: []ArgType{ASCII}},
		"persist-key": {Name: "persist-key"},
		"persist-tun": {Name: "persist-tun"},
		"float":       {Name: "float"},
		"auth-user-pass": {Name: "auth-user-pass", Args: []ArgType{ASCII}, Scope: ScopeClient},
		"crl-verify":  {Name: "crl-verify", Required: 1, Args: []ArgType{ASCII}, Scope: ScopeServer},
		"status":      {Name: "status", Required: 1, Args: []ArgType{ASCII}},
		"log":         {Name: "log", Required: 1, Args: []ArgType{ASCII}},
		"log-append":  {Name: "log-append", Required: 1, Args: []ArgType{ASCII}},
		"verb":        {Name: "verb", Required: 1, Args: []ArgType{Int}},
		"mute":        {Name: "mute", Required: 1, Args: []ArgType{Int}},
		"mute-replay-warnings": {Name: "mute-replay-warnings"},
		"replay-window":        {Name: "replay-window", Required: 1, Args: []ArgType{Int, Int}},
		"explicit-exit-notify": {Name: "explicit-exit-notify", Required: 1,
			Args:   []ArgType{Enum},
			Values: [][]string{{"1", "2"}}},
	}
}
