package httpserver

// shareTemplate renders the public read-only wishlist page. Kept inline: it is
// the only template the service serves.
const shareTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>{{.WishlistName}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            background-color: #f0f5f4;
            color: #333;
            margin: 0;
            padding: 20px;
        }
        h1 {
            color: #13aa52;
            text-align: center;
        }
        .wishlist {
            max-width: 800px;
            margin: 0 auto;
        }
        .item {
            border: 1px solid #ddd;
            border-radius: 8px;
            padding: 20px;
            margin: 10px 0;
            background-color: #fff;
            display: flex;
            align-items: center;
        }
        .item img {
            max-width: 150px;
            max-height: 150px;
            margin-right: 20px;
            border-radius: 8px;
        }
        .item a {
            text-decoration: none;
            color: #13aa52;
            font-size: 20px;
        }
        .item a:hover {
            text-decoration: underline;
        }
    </style>
</head>
<body>
    <div class="wishlist">
        <h1>Wishlist: {{.WishlistName}}</h1>
        {{range .Items}}
        <div class="item">
            {{if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
            <div>
                <a href="{{.URL}}" target="_blank">{{.Title}}</a>
            </div>
        </div>
        {{end}}
    </div>
</body>
</html>
`
