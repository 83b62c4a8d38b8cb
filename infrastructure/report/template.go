package report

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            padding: 20px;
            line-height: 1.6;
        }
        .container {
            max-width: 1400px;
            margin: 0 auto;
            background: white;
            border-radius: 12px;
            box-shadow: 0 10px 40px rgba(0,0,0,0.2);
            overflow: hidden;
        }
        .banner {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            text-align: center;
        }
        .banner h1 { font-size: 2.5em; margin-bottom: 10px; }
        .content { padding: 30px; }
        .section { margin-bottom: 40px; }
        .section-title {
            font-size: 1.8em;
            color: #2c3e50;
            margin-bottom: 20px;
            padding-bottom: 10px;
            border-bottom: 3px solid #667eea;
        }
        .info-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
            gap: 20px;
        }
        .info-card {
            background: #f8f9fa;
            padding: 20px;
            border-radius: 8px;
            border-left: 4px solid #667eea;
        }
        .info-card h3 {
            color: #34495e;
            font-size: 0.9em;
            text-transform: uppercase;
            letter-spacing: 1px;
            margin-bottom: 10px;
        }
        .info-card p { font-size: 1.4em; font-weight: bold; color: #2c3e50; word-break: break-all; }
        .status-success { color: #27ae60 !important; }
        .status-error { color: #e74c3c !important; }
        .details-table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }
        .details-table th { background: #667eea; color: white; padding: 15px; text-align: left; }
        .details-table td { padding: 12px 15px; border-bottom: 1px solid #ecf0f1; }
        .badge { display: inline-block; padding: 5px 12px; border-radius: 20px; font-size: 0.85em; font-weight: 600; }
        .badge-success { background: #d4edda; color: #155724; }
        .badge-error { background: #f8d7da; color: #721c24; }
        .screenshot-container { margin: 20px 0; text-align: center; }
        .screenshot-container img { max-width: 100%; border: 2px solid #ddd; border-radius: 8px; }
        .element-screenshots {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 20px;
        }
        .element-screenshot { background: #f8f9fa; padding: 15px; border-radius: 8px; text-align: center; }
        .element-screenshot img { max-width: 100%; border: 1px solid #ddd; border-radius: 4px; }
        .page-footer { background: #2c3e50; color: white; padding: 20px; text-align: center; }
    </style>
</head>
<body>
{{- define "badge"}}{{if .}}<span class="badge badge-success">Found</span>{{else}}<span class="badge badge-error">Not Found</span>{{end}}{{end}}
{{- define "yesno"}}{{if .}}<span class="badge badge-success">Yes</span>{{else}}<span class="badge badge-error">No</span>{{end}}{{end}}
    <div class="container">
        <div class="banner">
            <h1>Website Validation Report</h1>
            {{with .Generator}}<p>{{.}}</p>{{end}}
        </div>

        <div class="content">
            <div class="section" id="overview">
                <h2 class="section-title">Overview</h2>
                <div class="info-grid">
                    <div class="info-card"><h3>Target URL</h3><p id="target-url">{{.URL}}</p></div>
                    <div class="info-card"><h3>Validation Date</h3><p>{{.Timestamp}}</p></div>
                    <div class="info-card"><h3>HTTP Status</h3><p id="http-status" class="{{if .StatusOK}}status-success{{else}}status-error{{end}}">{{.StatusCode}}</p></div>
                    <div class="info-card"><h3>Navigation</h3><p id="navigation" class="{{if .NavigationSuccess}}status-success{{else}}status-error{{end}}">{{if .NavigationSuccess}}Success{{else}}Failed{{end}}</p></div>
                    <div class="info-card"><h3>Header Present</h3><p id="header-present" class="{{if .HeaderFound}}status-success{{else}}status-error{{end}}">{{if .HeaderFound}}Yes{{else}}No{{end}}</p></div>
                    <div class="info-card"><h3>Footer Present</h3><p id="footer-present" class="{{if .FooterFound}}status-success{{else}}status-error{{end}}">{{if .FooterFound}}Yes{{else}}No{{end}}</p></div>
                    <div class="info-card"><h3>Exit Code</h3><p id="exit-code" class="{{if eq .ExitCode 0}}status-success{{else}}status-error{{end}}">{{.ExitCode}}</p></div>
                    <div class="info-card"><h3>Browser</h3><p>{{.Browser}}</p></div>
                    {{with .RunID}}<div class="info-card"><h3>Run ID</h3><p style="font-size: 0.9em;">{{.}}</p></div>{{end}}
                    {{with .Trace}}<div class="info-card"><h3>Trace</h3><p id="trace"><a href="{{.Href}}">{{.Name}}</a></p></div>{{end}}
                </div>
            </div>

            {{with .Header}}
            <div class="section" id="header-details">
                <h2 class="section-title">Header Validation</h2>
                <table class="details-table">
                    <thead><tr><th>Element</th><th>Status</th><th>Details</th></tr></thead>
                    <tbody>
                        <tr><td><strong>Header</strong></td><td>{{template "badge" .header_exists}}</td><td></td></tr>
                        <tr><td><strong>Logo</strong></td><td>{{template "badge" .logo_exists}}</td><td>Clickable: {{template "yesno" .logo_clickable}}</td></tr>
                        <tr><td><strong>Login Button</strong></td><td>{{template "badge" .login_button_exists}}</td><td>Clickable: {{template "yesno" .login_button_clickable}}</td></tr>
                        <tr><td><strong>Language Switcher</strong></td><td>{{template "badge" .language_switcher_exists}}</td><td>Clickable: {{template "yesno" .language_switcher_clickable}}</td></tr>
                        <tr><td><strong>Cart</strong></td><td>{{template "badge" .cart_exists}}</td><td></td></tr>
                        <tr><td><strong>Dropdown Menus</strong></td><td><span class="badge badge-success">{{.dropdowns_count}} Found</span></td><td>Working: {{.working_dropdowns}}/{{.dropdowns_count}}</td></tr>
                        <tr><td><strong>Navigation Items</strong></td><td><span class="badge badge-success">{{.nav_items_count}} Found</span></td><td></td></tr>
                    </tbody>
                </table>
            </div>
            {{end}}

            {{if .Dropdowns}}
            <div class="section" id="dropdowns">
                <h2 class="section-title">Dropdown Menus</h2>
                <table class="details-table">
                    <thead><tr><th>#</th><th>Label</th><th>Hovered</th><th>Opens Menu</th></tr></thead>
                    <tbody>
                        {{range .Dropdowns}}<tr><td>{{.index}}</td><td>{{.label}}</td><td>{{template "yesno" .hovered}}</td><td>{{template "yesno" .opens_menu}}</td></tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
            {{end}}

            {{with .Home}}
            <div class="section" id="home-details">
                <h2 class="section-title">Home Page</h2>
                <table class="details-table">
                    <thead><tr><th>Element</th><th>Status</th><th>Details</th></tr></thead>
                    <tbody>
                        <tr><td><strong>Main Content</strong></td><td>{{template "badge" .main_content_exists}}</td><td></td></tr>
                        <tr><td><strong>Banner</strong></td><td>{{template "badge" .banner_found}}</td><td></td></tr>
                        <tr><td><strong>Featured Products</strong></td><td>{{template "badge" .featured_products_exists}}</td><td>Products: {{.product_items_count}}</td></tr>
                        <tr class="product-details"><td><strong>Product Details</strong></td><td></td><td>Names: {{.product_names_count}}, Prices: {{.product_prices_count}}, Add to cart: {{.add_to_cart_count}}</td></tr>
                    </tbody>
                </table>
            </div>
            {{end}}

            {{if or .Languages .Search}}
            <div class="section" id="interactions">
                <h2 class="section-title">Language &amp; Search</h2>
                <table class="details-table">
                    <thead><tr><th>Check</th><th>Result</th></tr></thead>
                    <tbody>
                        {{range .Languages}}<tr class="language"><td><strong>Switch to {{.Lang}}</strong></td><td>{{template "yesno" .OK}}</td></tr>
                        {{end}}
                        {{with .Search}}
                        <tr class="search"><td><strong>Search "{{.Term}}"</strong></td><td>{{template "yesno" .Submitted}}</td></tr>
                        {{if .HasIncremental}}<tr class="search"><td><strong>Results while typing</strong></td><td>{{template "yesno" .Incremental}}</td></tr>{{end}}
                        {{end}}
                    </tbody>
                </table>
            </div>
            {{end}}

            {{with .Footer}}
            <div class="section" id="footer-details">
                <h2 class="section-title">Footer Validation</h2>
                <table class="details-table">
                    <thead><tr><th>Element</th><th>Status</th><th>Details</th></tr></thead>
                    <tbody>
                        <tr><td><strong>Footer</strong></td><td>{{template "badge" .footer_exists}}</td><td></td></tr>
                        <tr><td><strong>Social Links</strong></td><td><span class="badge badge-success">{{.social_links_count}} Found</span></td><td></td></tr>
                        <tr><td><strong>Footer Links</strong></td><td><span class="badge badge-success">{{.footer_links_count}} Found</span></td><td></td></tr>
                        <tr><td><strong>Newsletter</strong></td><td>{{template "badge" .newsletter_exists}}</td><td></td></tr>
                        <tr><td><strong>Copyright</strong></td><td>{{template "badge" .copyright_exists}}</td><td></td></tr>
                    </tbody>
                </table>
            </div>
            {{end}}

            {{with .PageScreenshot}}
            <div class="section" id="page-screenshot">
                <h2 class="section-title">Page Screenshot</h2>
                <div class="screenshot-container">
                    <img src="{{.Src}}" alt="{{.Title}}">
                </div>
            </div>
            {{end}}

            {{if .Gallery}}
            <div class="section" id="element-screenshots">
                <h2 class="section-title">Element Screenshots</h2>
                <div class="element-screenshots">
                    {{range .Gallery}}<div class="element-screenshot">
                        <h4>{{.Title}}</h4>
                        <img src="{{.Src}}" alt="{{.Title}}">
                    </div>
                    {{end}}
                </div>
            </div>
            {{end}}
        </div>

        <div class="page-footer">
            {{with .Generator}}<p>Generated by {{.}}</p>{{end}}
            {{with .PageTitle}}<p>Final page: {{.}}</p>{{end}}
        </div>
    </div>
</body>
</html>
`
