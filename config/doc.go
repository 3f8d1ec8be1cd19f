// Package config loads the JSON settings file used by the numerics command.
//
// Every field is optional. Unset fields fall back to the defaults returned by
// the Get* methods, so a file only needs the values it changes:
//
//	{
//	  "resolutions": [40, 50, 60],
//	  "precision": 10,
//	  "log_domain": true,
//	  "spacing": "first"
//	}
package config
