// Package web provides the HTTP server and web interface for go-sampleweb
package web

/*

	### **Core Files:**
	1. **`webserver_core_routes.go`** - Server setup, middleware and route configuration
	2. **`web_utils.go`** - Template data, rendering and error pages
	3. **`embedded_static.go`** - Embedded templates and static assets

	### **Page Handler Files:**
	4. **`web_homePage.go`** - Home/root page handler

	### **API File:**
	5. **`web_apiHandlers.go`** - REST endpoints under /api that return JSON

*/
