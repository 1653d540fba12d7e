package config

// DefaultConfig is the built-in catalog, TOML so that user-supplied configs
// can replace or extend it without touching engine logic.
const DefaultConfig = `
title = "leakgate config"

# Vendor-prefixed rules come first: the first matching rule on a line
# determines the reported category, so specific signatures outrank the
# generic assignment rules at the bottom.

[[rules]]
id = "aws-access-token"
description = "AWS token"
regex = '''(A3T[A-Z0-9]|AKIA|ASIA|ABIA|ACCA)[A-Z0-9]{16}'''
confidence = "high"
keywords = ["akia", "asia", "abia", "acca", "a3t"]

[[rules]]
id = "github-token"
description = "GitHub token"
regex = '''(ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{36}'''
confidence = "high"
keywords = ["ghp_", "gho_", "ghu_", "ghs_", "ghr_"]

[[rules]]
id = "github-fine-grained-token"
description = "GitHub fine-grained token"
regex = '''github_pat_[A-Za-z0-9_]{20,}'''
confidence = "high"
keywords = ["github_pat_"]

[[rules]]
id = "stripe-secret-key"
description = "Stripe secret key"
regex = '''(sk|rk)_(live|test)_[A-Za-z0-9]{20,}'''
confidence = "high"
keywords = ["sk_live_", "rk_live_", "sk_test_", "rk_test_"]

[[rules]]
id = "google-api-key"
description = "Google API key"
regex = '''AIza[0-9A-Za-z\-_]{35}'''
confidence = "high"
keywords = ["aiza"]

[[rules]]
id = "slack-token"
description = "Slack token"
regex = '''xox[baprs]-[A-Za-z0-9\-]{10,}'''
confidence = "high"
keywords = ["xoxb", "xoxa", "xoxp", "xoxr", "xoxs"]

[[rules]]
id = "sendgrid-api-key"
description = "SendGrid API key"
regex = '''SG\.[A-Za-z0-9_\-]{16,}\.[A-Za-z0-9_\-]{16,}'''
confidence = "high"
keywords = ["sg."]

[[rules]]
id = "private-key"
description = "Private key block"
regex = '''-----BEGIN (RSA |DSA |EC |OPENSSH |PGP )?PRIVATE KEY( BLOCK)?-----'''
confidence = "high"
keywords = ["private key"]

[[rules]]
id = "jwt"
description = "JSON Web Token"
regex = '''eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}'''
keywords = ["eyj"]

[[rules]]
id = "generic-api-key"
description = "Generic API key assignment"
regex = '''(?i)(api[_-]?key|api[_-]?secret|apikey)\s*[:=]\s*['"][0-9a-zA-Z\-_]{16,64}['"]'''
keywords = ["api_key", "api-key", "apikey", "api_secret", "api-secret"]

[[rules]]
id = "generic-secret"
description = "Generic secret assignment"
regex = '''(?i)(secret|token)\s*[:=]\s*['"][0-9a-zA-Z\-_]{16,64}['"]'''
keywords = ["secret", "token"]

[[rules]]
id = "generic-password"
description = "Hardcoded password"
regex = '''(?i)(password|passwd)\s*[:=]\s*['"][^'"]{16,64}['"]'''
keywords = ["password", "passwd"]

[allowlist]
description = "global allowlist"
regexes = [
    '''your[_-]?[a-z0-9_-]*(key|token|secret|password)[_-]?here''',
    '''(xxx|\*\*\*|\.\.\.)''',
    '''<[a-z0-9_-]*(key|token|secret|password)[a-z0-9_-]*>''',
    '''\$\{[a-z0-9_]+\}''',
    '''\{\{\s*[a-z0-9_.]+\s*\}\}''',
    '''(os\.environ|process\.env|getenv)''',
]
paths = [
    '''(^|/)node_modules/''',
    '''(^|/)vendor/''',
    '''(^|/)\.git/''',
    '''(^|/)go\.sum$''',
    '''(^|/)(package-lock\.json|yarn\.lock|pnpm-lock\.yaml|Cargo\.lock)$''',
    '''\.min\.(js|css)$''',
    '''\.(png|jpg|jpeg|gif|ico|pdf|zip|gz|tar|woff2?|ttf|eot)$''',
]
stopwords = [
    "example",
    "placeholder",
    "changeme",
    "dummy",
    "sample",
    "insert",
    "abcdef123456",
]
`
