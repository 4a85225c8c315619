// Package scaffold holds the canonical React + Vite project files used
// whenever generated output needs patching or wholesale replacement.
package scaffold

import (
	"fmt"
	"sort"
	"strings"

	"lakenine-studio/internal/domain/entity"
)

const PackageJSON = `{
  "name": "lakenine-site",
  "private": true,
  "version": "1.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.2.0",
    "react-dom": "^18.2.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.2.0",
    "autoprefixer": "^10.4.16",
    "postcss": "^8.4.32",
    "tailwindcss": "^3.4.0",
    "vite": "^5.0.0"
  }
}`

const ViteConfig = `import { defineConfig } from 'vite';
import react from '@vitejs/plugin-react';

export default defineConfig({
  plugins: [react()],
});`

const TailwindConfig = `/** @type {import('tailwindcss').Config} */
export default {
  content: ['./index.html', './src/**/*.{js,jsx,ts,tsx}'],
  theme: {
    extend: {},
  },
  plugins: [],
};`

const PostCSSConfig = `export default {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
};`

const MainJSX = `import React from 'react';
import ReactDOM from 'react-dom/client';
import App from './App';
import './index.css';

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>
);`

const IndexCSS = `@tailwind base;
@tailwind components;
@tailwind utilities;

html {
  scroll-behavior: smooth;
}

body {
  margin: 0;
  font-family: 'Inter', system-ui, -apple-system, sans-serif;
  -webkit-font-smoothing: antialiased;
}`

// IndexHTML renders the single-page entry document.
func IndexHTML(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>`, title)
}

// AppJSX builds a root component importing and rendering the given
// component paths (relative to src/, e.g. "components/Hero").
func AppJSX(componentPaths []string) string {
	sort.Strings(componentPaths)
	var imports, renders strings.Builder
	for _, p := range componentPaths {
		name := componentName(p)
		imports.WriteString(fmt.Sprintf("import %s from './%s';\n", name, strings.TrimSuffix(p, extOf(p))))
		renders.WriteString(fmt.Sprintf("      <%s />\n", name))
	}
	return fmt.Sprintf(`import React from 'react';
%s
function App() {
  return (
    <div className="min-h-screen bg-white">
%s    </div>
  );
}

export default App;`, imports.String(), renders.String())
}

func extOf(p string) string {
	if i := strings.LastIndex(p, "."); i >= 0 {
		return p[i:]
	}
	return ""
}

func componentName(p string) string {
	base := p
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, extOf(base))
}

// FooterJSX renders a simple site footer seasoned with the business
// domain so injected footers do not all read identically.
func FooterJSX(domain entity.BusinessDomain) string {
	tagline := map[entity.BusinessDomain]string{
		entity.DomainGym:        "Train hard. Live strong.",
		entity.DomainMedical:    "Caring for you, every day.",
		entity.DomainRestaurant: "Crafted with passion, served with pride.",
		entity.DomainCafe:       "Your daily dose of comfort.",
		entity.DomainEducation:  "Learning for life.",
		entity.DomainTechnology: "Building tomorrow, today.",
		entity.DomainEcommerce:  "Quality products, delivered.",
		entity.DomainTravel:     "Your journey starts here.",
		entity.DomainFinance:    "Securing your future.",
		entity.DomainRealEstate: "Find your place in the world.",
	}[domain]
	if tagline == "" {
		tagline = "Professional service you can trust."
	}
	return fmt.Sprintf(`import React from 'react';

function Footer() {
  const year = new Date().getFullYear();
  return (
    <footer className="bg-gray-900 text-gray-300 py-12">
      <div className="max-w-6xl mx-auto px-4 grid md:grid-cols-3 gap-8">
        <div>
          <h3 className="text-white text-lg font-semibold mb-3">About Us</h3>
          <p className="text-sm leading-relaxed">%s</p>
        </div>
        <div>
          <h3 className="text-white text-lg font-semibold mb-3">Quick Links</h3>
          <ul className="space-y-2 text-sm">
            <li><a href="#home" className="hover:text-white">Home</a></li>
            <li><a href="#services" className="hover:text-white">Services</a></li>
            <li><a href="#about" className="hover:text-white">About</a></li>
            <li><a href="#contact" className="hover:text-white">Contact</a></li>
          </ul>
        </div>
        <div>
          <h3 className="text-white text-lg font-semibold mb-3">Contact</h3>
          <p className="text-sm">info@example.com</p>
          <p className="text-sm">+1 (555) 123-4567</p>
        </div>
      </div>
      <div className="border-t border-gray-800 mt-8 pt-6 text-center text-sm">
        &copy; {year} All rights reserved.
      </div>
    </footer>
  );
}

export default Footer;`, tagline)
}

// DiagnosticApp embeds the raw model output in a visible error page so
// a failed extraction still renders something inspectable.
func DiagnosticApp(raw string) string {
	const maxEmbed = 3000
	if len(raw) > maxEmbed {
		raw = raw[:maxEmbed] + "\n... (truncated)"
	}
	raw = strings.ReplaceAll(raw, "\\", "\\\\")
	raw = strings.ReplaceAll(raw, "`", "\\`")
	raw = strings.ReplaceAll(raw, "${", "\\${")
	return fmt.Sprintf(`import React from 'react';

const rawResponse = %s;

function App() {
  return (
    <div className="min-h-screen bg-gray-50 p-8">
      <div className="max-w-3xl mx-auto">
        <h1 className="text-2xl font-bold text-red-600 mb-2">
          Generation needs another attempt
        </h1>
        <p className="text-gray-600 mb-6">
          The model response could not be turned into a project. The raw
          output is shown below so you can refine your prompt and retry.
        </p>
        <pre className="bg-white border rounded p-4 text-xs overflow-auto whitespace-pre-wrap">
          {rawResponse}
        </pre>
      </div>
    </div>
  );
}

export default App;`, "`"+raw+"`")
}

// DiagnosticProject is the minimal runnable project wrapping DiagnosticApp.
func DiagnosticProject(raw string) entity.FileSet {
	files := entity.FileSet{}
	files.Set("package.json", PackageJSON)
	files.Set("index.html", IndexHTML("LakeNine Site"))
	files.Set("vite.config.js", ViteConfig)
	files.Set("src/main.jsx", MainJSX)
	files.Set("src/index.css", IndexCSS)
	files.Set("src/App.jsx", DiagnosticApp(raw))
	return files
}
